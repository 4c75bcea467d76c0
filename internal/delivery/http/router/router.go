// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petclinic/internal/delivery/http/middleware"
	"petclinic/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OwnerHandler   *handler.OwnerHandler
	PetHandler     *handler.PetHandler
	VisitHandler   *handler.VisitHandler
	VetHandler     *handler.VetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	ownerHandler   *handler.OwnerHandler
	petHandler     *handler.PetHandler
	visitHandler   *handler.VisitHandler
	vetHandler     *handler.VetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		ownerHandler:   params.OwnerHandler,
		petHandler:     params.PetHandler,
		visitHandler:   params.VisitHandler,
		vetHandler:     params.VetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role checks are not wired here; every protected operation funnels through
// the authorization engine in the usecase layer.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	ownerGroup := e.Group("/owners")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	{
		ownerGroup.GET("/me", r.ownerHandler.GetMyOwner)
		ownerGroup.PUT("/me", r.ownerHandler.UpdateMyOwner)
		ownerGroup.GET("", r.ownerHandler.ListOwners)
		ownerGroup.POST("", r.ownerHandler.CreateOwner)
		ownerGroup.GET("/user/:email", r.ownerHandler.GetOwnerByUserEmail)
		ownerGroup.DELETE("/with-user/:id", r.ownerHandler.DeleteOwnerWithUser)
		ownerGroup.GET("/:id", r.ownerHandler.GetOwner)
		ownerGroup.PUT("/:id", r.ownerHandler.UpdateOwner)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.DELETE("/:id", r.ownerHandler.DeleteAccount)
	}

	petGroup := e.Group("/pets")
	petGroup.Use(r.authMiddleware.Authenticate)
	{
		petGroup.GET("", r.petHandler.ListPets)
		petGroup.GET("/mine", r.petHandler.ListMyPets)
		petGroup.GET("/owner/:ownerId", r.petHandler.ListPetsByOwner)
		petGroup.POST("/owner/:ownerId", r.petHandler.CreatePet)
		petGroup.GET("/:id", r.petHandler.GetPet)
		petGroup.PUT("/:id", r.petHandler.UpdatePet)
		petGroup.DELETE("/:id", r.petHandler.DeletePet)
	}

	visitGroup := e.Group("/visits")
	visitGroup.Use(r.authMiddleware.Authenticate)
	{
		visitGroup.GET("", r.visitHandler.ListVisits)
		visitGroup.POST("", r.visitHandler.CreateVisit)
		visitGroup.GET("/mine", r.visitHandler.ListMyVisits)
		visitGroup.GET("/pet/:petId", r.visitHandler.ListVisitsByPet)
		visitGroup.GET("/:id", r.visitHandler.GetVisit)
		visitGroup.PUT("/:id", r.visitHandler.UpdateVisit)
		visitGroup.DELETE("/:id", r.visitHandler.DeleteVisit)
	}

	vetGroup := e.Group("/vets")
	vetGroup.Use(r.authMiddleware.Authenticate)
	{
		vetGroup.GET("", r.vetHandler.ListVets)
		vetGroup.POST("", r.vetHandler.CreateVet)
		vetGroup.GET("/:id", r.vetHandler.GetVet)
		vetGroup.PUT("/:id", r.vetHandler.UpdateVet)
		vetGroup.DELETE("/:id", r.vetHandler.DeleteVet)
	}
}
