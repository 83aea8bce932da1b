package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/guillenLawn/bodega-backend/auth"
	"github.com/guillenLawn/bodega-backend/config"
	"github.com/guillenLawn/bodega-backend/controller"
	"github.com/guillenLawn/bodega-backend/repository"
	"github.com/guillenLawn/bodega-backend/routes"
	"github.com/guillenLawn/bodega-backend/service"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("conexión a la base de datos: %v", err)
	}
	redisClient := config.ConnectRedis(cfg)

	store := repository.NewGormStore(db)
	productosRepo := repository.NewGormProductos(store)
	usuariosRepo := repository.NewGormUsuarios(store)
	pedidosRepo := repository.NewGormPedidos(store)

	cache := service.NewProductoCache(redisClient)
	tokens := auth.NewService(cfg.JWTSecret)

	usuariosSvc := service.NewUserService(usuariosRepo)
	productosSvc := service.NewProductService(productosRepo, cache)
	pedidosSvc := service.NewOrderService(productosRepo, pedidosRepo, store, cache, cfg.EstadoInicial)
	statsSvc := service.NewStatsService(store)

	usuariosSvc.BootstrapAdmin(context.Background())

	ct := controller.New(usuariosSvc, productosSvc, pedidosSvc, statsSvc, store, tokens)

	router := gin.Default()
	router.Use(cors.Default())
	routes.Register(router, ct, tokens, redisClient)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("servidor escuchando en %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
