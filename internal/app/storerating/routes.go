// Package storerating предоставляет маршруты для основного приложения.
package storerating

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	admindashboard "github.com/magabrotheeeer/store-rating/internal/http/handlers/admin/dashboard"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/admin/storelist"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/admin/usercreate"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/auth/changepassword"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/health"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/rating/submit"
	ownerdashboard "github.com/magabrotheeeer/store-rating/internal/http/handlers/store/dashboard"
	"github.com/magabrotheeeer/store-rating/internal/http/handlers/store/list"
	"github.com/magabrotheeeer/store-rating/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-rating/internal/lib/jwt"
	"github.com/magabrotheeeer/store-rating/internal/models"
	adminservice "github.com/magabrotheeeer/store-rating/internal/services/admin"
	authservice "github.com/magabrotheeeer/store-rating/internal/services/auth"
	ratingservice "github.com/magabrotheeeer/store-rating/internal/services/rating"
	storeservice "github.com/magabrotheeeer/store-rating/internal/services/store"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	jwtMaker jwt.Maker,
	authService *authservice.Service,
	adminService *adminservice.Service,
	storeService *storeservice.Service,
	ratingService *ratingservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Put("/auth/password", changepassword.New(logger, authService).ServeHTTP)

			// Список магазинов доступен любому аутентифицированному
			// пользователю, роль не проверяется
			r.Get("/stores", list.New(logger, storeService).ServeHTTP)

			// Только администратор
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin))
				r.Get("/admin/dashboard", admindashboard.New(logger, adminService).ServeHTTP)
				r.Post("/admin/users", usercreate.New(logger, adminService).ServeHTTP)
				r.Get("/admin/users", userlist.New(logger, adminService).ServeHTTP)
				r.Get("/admin/stores", storelist.New(logger, adminService).ServeHTTP)
			})

			// Только обычный пользователь
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleUser))
				r.Post("/ratings", submit.New(logger, ratingService).ServeHTTP)
			})

			// Только владелец магазина
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleStoreOwner))
				r.Get("/store/dashboard", ownerdashboard.New(logger, storeService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
