package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/RodMac08/WellBloomBE/middleware"
	"github.com/RodMac08/WellBloomBE/routes"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Inicializar logs
	if err := config.InitLogger(); err != nil {
		log.Fatalf("No se pudo inicializar el logger: %v", err)
	}
	defer config.Logger.Sync()

	// Cargar configuración
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("No se pudo cargar la configuración: %v", err)
	}

	// Conectar la base de datos
	db, err := config.ConectarDB(conf)
	if err != nil {
		log.Fatalf("No se pudo conectar la base de datos: %v", err)
	}

	// Mensajes de validación con los nombres del JSON
	utils.RegistrarNombresJSON()

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	routes.RegisterRoutes(r, store.New(db))

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("Servidor escuchando en el puerto %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("El servidor no pudo iniciar: %v", err)
		}
	}()

	// Esperar la señal de interrupción para cerrar con gracia
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Cerrando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error al cerrar el servidor: %v", err)
	}

	log.Println("Servidor cerrado")
}
