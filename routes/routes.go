package routes

import (
	"net/http"

	"github.com/RodMac08/WellBloomBE/controllers"
	"github.com/RodMac08/WellBloomBE/middleware"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store) {
	actividadController := controllers.NewActividadController(s)
	ejercicioController := controllers.NewEjercicioController(s)
	meditacionController := controllers.NewMeditacionController(s)
	emocionController := controllers.NewEmocionController(s)
	fraseController := controllers.NewFraseController(s)
	registroController := controllers.NewRegistroController(s)
	bitacoraController := controllers.NewBitacoraController(s)
	reporteController := controllers.NewReporteController(s)
	adminController := controllers.NewAdministradorController(s)
	usuarioController := controllers.NewUsuarioController(s)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/test-db", func(c *gin.Context) {
		if err := s.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Sin conexión a la base de datos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conexión exitosa"})
	})

	api := r.Group("/api")

	actividades := api.Group("/actividades")
	{
		actividades.GET("/", actividadController.GetAll)
		actividades.GET("/search", actividadController.Search)
		actividades.GET("/:id", actividadController.GetByID)
		actividades.POST("/", actividadController.Create)
		actividades.PUT("/:id", actividadController.Update)
		actividades.DELETE("/:id", actividadController.Delete)
	}

	ejercicios := api.Group("/ejercicios")
	{
		ejercicios.POST("/", ejercicioController.Create)
		ejercicios.GET("/actividad/:id", ejercicioController.GetByActividad)
		ejercicios.GET("/turno/:turno", ejercicioController.GetByTurno)
		ejercicios.GET("/estadisticas/turnos", ejercicioController.GetEstadisticas)
		ejercicios.PUT("/:id", ejercicioController.Update)
		ejercicios.PUT("/:id/complete", ejercicioController.Complete)
		ejercicios.DELETE("/:id", ejercicioController.Delete)
	}

	meditaciones := api.Group("/meditaciones")
	{
		meditaciones.POST("/", meditacionController.Create)
		meditaciones.GET("/completadas/list", meditacionController.GetCompletadas)
		meditaciones.GET("/actividad/:id", meditacionController.GetByActividad)
		meditaciones.GET("/:id", meditacionController.GetByID)
		meditaciones.PUT("/:id", meditacionController.Update)
		meditaciones.PUT("/:id/complete", meditacionController.Complete)
		meditaciones.DELETE("/:id", meditacionController.Delete)
	}

	emociones := api.Group("/emociones")
	{
		emociones.GET("/", emocionController.GetAll)
		emociones.GET("/:id", emocionController.GetByID)
		emociones.GET("/:id/frases", emocionController.GetFrases)
		emociones.POST("/", emocionController.Create)
		emociones.PUT("/:id", emocionController.Update)
		emociones.DELETE("/:id", emocionController.Delete)
	}

	frases := api.Group("/frases")
	{
		frases.GET("/", fraseController.GetAll)
		frases.GET("/search", fraseController.Search)
		frases.GET("/emocion/:id", fraseController.GetByEmocion)
		frases.GET("/random/emocion/:id", fraseController.GetAleatoria)
		frases.POST("/", fraseController.Create)
		frases.PUT("/:id", fraseController.Update)
		frases.DELETE("/:id", fraseController.Delete)
	}

	registros := api.Group("/registros")
	{
		registros.GET("/", registroController.GetAll)
		registros.POST("/", registroController.Create)
		registros.GET("/usuario/:id", registroController.GetByUsuario)
		registros.GET("/estadisticas/:id", registroController.GetEstadisticas)
		registros.DELETE("/:id", registroController.Delete)
	}

	bitacoras := api.Group("/bitacoras")
	{
		bitacoras.POST("/", bitacoraController.Create)
		bitacoras.GET("/usuario/:id", bitacoraController.GetByUsuario)
		bitacoras.GET("/resumen/usuario/:id", bitacoraController.GetResumen)
		bitacoras.GET("/:id", bitacoraController.GetByID)
		bitacoras.PUT("/:id/nota", bitacoraController.UpdateNota)
		bitacoras.DELETE("/:id", bitacoraController.Delete)
	}

	reportes := api.Group("/reportes")
	{
		reportes.GET("/", reporteController.GetAll)
		reportes.GET("/estadisticas/totales", reporteController.GetEstadisticas)
		reportes.GET("/:id", reporteController.GetByID)
		reportes.POST("/", reporteController.Create)
		reportes.PUT("/:id/respuesta", reporteController.UpdateRespuesta)
		reportes.DELETE("/:id", reporteController.Delete)
	}

	// Registro y login son públicos; el resto del grupo exige token
	administradores := api.Group("/administradores")
	{
		administradores.POST("/register", adminController.Register)
		administradores.POST("/login", adminController.Login)
	}
	adminPrivado := api.Group("/administradores")
	adminPrivado.Use(middleware.AuthMiddleware())
	{
		adminPrivado.GET("/", adminController.GetAll)
		adminPrivado.GET("/:id", adminController.GetByID)
		adminPrivado.PUT("/:id", adminController.Update)
		adminPrivado.DELETE("/:id", adminController.Delete)
	}

	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("/", usuarioController.GetAll)
		usuarios.GET("/:id", usuarioController.GetByID)
		usuarios.POST("/", usuarioController.Create)
		usuarios.PUT("/:id/ultimo-ingreso", usuarioController.UpdateUltimoIngreso)
		usuarios.PUT("/:id/seccion", usuarioController.UpdateSeccion)
	}
}
