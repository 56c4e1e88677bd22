package models

import "time"

// ErrorCampo mensaje de validación asociado a un campo concreto
type ErrorCampo struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Paginacion bloque de paginación por límite/desplazamiento
type Paginacion struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// PaginacionPorPagina bloque de paginación por número de página
type PaginacionPorPagina struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ListaPaginada respuesta estándar de los listados paginados
type ListaPaginada struct {
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination"`
}

// ActividadResumen fila del listado de actividades con sus relaciones
type ActividadResumen struct {
	ID              uint   `gorm:"column:id_actividad" json:"id_actividad"`
	Nombre          string `gorm:"column:nombre_actividad" json:"nombre_actividad"`
	Descripcion     string `gorm:"column:descripcion" json:"descripcion"`
	Tiempo          *int   `gorm:"column:tiempo_actividad" json:"tiempo_actividad"`
	TotalEjercicios int64  `gorm:"column:total_ejercicios" json:"total_ejercicios"`
	IDMeditacion    *uint  `gorm:"column:id_meditacion" json:"id_meditacion"`
}

// ActividadDetalle actividad con sus ejercicios y meditación asociados
type ActividadDetalle struct {
	Actividad
	Ejercicios []Ejercicio `json:"ejercicios"`
	Meditacion *Meditacion `json:"meditacion"`
}

// EjercicioConActividad ejercicio junto con el nombre de su actividad
type EjercicioConActividad struct {
	ID              uint    `gorm:"column:id_ejercicio" json:"id_ejercicio"`
	IDActividad     uint    `gorm:"column:id_actividad" json:"id_actividad"`
	Turno           *string `gorm:"column:turno" json:"turno"`
	Tiempo          *int    `gorm:"column:tiempo" json:"tiempo"`
	Completado      bool    `gorm:"column:completado" json:"completado"`
	NombreActividad string  `gorm:"column:nombre_actividad" json:"nombre_actividad"`
}

// MeditacionConActividad meditación junto con datos de su actividad
type MeditacionConActividad struct {
	ID              uint   `gorm:"column:id_meditacion" json:"id_meditacion"`
	IDActividad     uint   `gorm:"column:id_actividad" json:"id_actividad"`
	Tiempo          int    `gorm:"column:tiempo_meditacion" json:"tiempo_meditacion"`
	Completado      bool   `gorm:"column:completado" json:"completado"`
	NombreActividad string `gorm:"column:nombre_actividad" json:"nombre_actividad"`
	Descripcion     string `gorm:"column:descripcion" json:"descripcion,omitempty"`
}

// FraseConEmocion frase junto con el nombre de su emoción
type FraseConEmocion struct {
	ID            uint    `gorm:"column:id_frase" json:"id_frase"`
	Frase         string  `gorm:"column:frase" json:"frase"`
	Autor         *string `gorm:"column:autor" json:"autor"`
	IDEmocion     uint    `gorm:"column:id_emocion" json:"id_emocion"`
	NombreEmocion string  `gorm:"column:nombre_emocion" json:"nombre_emocion"`
}

// RegistroConDatos registro emocional con datos de usuario y emoción
type RegistroConDatos struct {
	ID            uint      `gorm:"column:id_registro" json:"id_registro"`
	HoraFoto      time.Time `gorm:"column:hora_foto" json:"hora_foto"`
	IDUsuario     uint      `gorm:"column:id_usuario" json:"id_usuario"`
	UsuarioNombre string    `gorm:"column:usuario_nombre" json:"usuario_nombre"`
	IDEmocion     uint      `gorm:"column:id_emocion" json:"id_emocion"`
	NombreEmocion string    `gorm:"column:nombre_emocion" json:"nombre_emocion"`
}

// RegistroDeUsuario fila del historial de registros de un usuario
type RegistroDeUsuario struct {
	ID             uint      `gorm:"column:id_registro" json:"id_registro"`
	HoraFoto       time.Time `gorm:"column:hora_foto" json:"hora_foto"`
	NombreEmocion  string    `gorm:"column:nombre_emocion" json:"nombre_emocion"`
	PuntajeEmocion *int      `gorm:"column:puntaje_emocion" json:"puntaje_emocion"`
}

// EstadisticaEmocion conteo y promedio por emoción para un usuario
type EstadisticaEmocion struct {
	NombreEmocion   string   `gorm:"column:nombre_emocion" json:"nombre_emocion"`
	Total           int64    `gorm:"column:total" json:"total"`
	PromedioPuntaje *float64 `gorm:"column:promedio_puntaje" json:"promedio_puntaje"`
}

// BitacoraConDatos entrada de bitácora con sus datos relacionados
type BitacoraConDatos struct {
	ID                 uint      `gorm:"column:id_bitacora" json:"id_bitacora"`
	IDUsuario          uint      `gorm:"column:id_usuario" json:"id_usuario"`
	IDRegistro         uint      `gorm:"column:id_registro" json:"id_registro"`
	Nota               *string   `gorm:"column:nota" json:"nota"`
	UsuarioNombre      string    `gorm:"column:usuario_nombre" json:"usuario_nombre,omitempty"`
	UsuarioCorreo      string    `gorm:"column:usuario_correo" json:"usuario_correo,omitempty"`
	HoraFoto           time.Time `gorm:"column:hora_foto" json:"hora_foto"`
	NombreEmocion      string    `gorm:"column:nombre_emocion" json:"nombre_emocion"`
	DescripcionEmocion string    `gorm:"column:descripcion_emocion" json:"descripcion_emocion,omitempty"`
	PuntajeEmocion     *int      `gorm:"column:puntaje_emocion" json:"puntaje_emocion"`
}

// ResumenEmocion agregado del resumen emocional de un usuario en una
// ventana de días hacia atrás
type ResumenEmocion struct {
	NombreEmocion   string    `gorm:"column:nombre_emocion" json:"nombre_emocion"`
	TotalRegistros  int64     `gorm:"column:total_registros" json:"total_registros"`
	PromedioPuntaje *float64  `gorm:"column:promedio_puntaje" json:"promedio_puntaje"`
	PrimeraVez      time.Time `gorm:"column:primera_vez" json:"primera_vez"`
	UltimaVez       time.Time `gorm:"column:ultima_vez" json:"ultima_vez"`
}

// ReporteConAdmin reporte junto con datos de su administrador
type ReporteConAdmin struct {
	ID                 uint      `gorm:"column:id_reporte" json:"id_reporte"`
	IDAdministrador    uint      `gorm:"column:id_administrador" json:"id_administrador"`
	Pregunta           string    `gorm:"column:pregunta" json:"pregunta"`
	Respuesta          *string   `gorm:"column:respuesta" json:"respuesta"`
	Nota               *string   `gorm:"column:nota" json:"nota"`
	FechaCreacion      time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
	AdminNombre        string    `gorm:"column:admin_nombre" json:"admin_nombre"`
	AdminCorreo        string    `gorm:"column:admin_correo" json:"admin_correo,omitempty"`
	AdminRol           string    `gorm:"column:admin_rol" json:"admin_rol"`
}

// EstadisticaReportes conteos de reportes agrupados por rol
type EstadisticaReportes struct {
	Rol                 string `gorm:"column:rol" json:"rol"`
	TotalReportes       int64  `gorm:"column:total_reportes" json:"total_reportes"`
	ReportesContestados int64  `gorm:"column:reportes_contestados" json:"reportes_contestados"`
	ReportesPendientes  int64  `gorm:"column:reportes_pendientes" json:"reportes_pendientes"`
}

// EstadisticaTurno conteo de ejercicios por turno
type EstadisticaTurno struct {
	Turno string `gorm:"column:turno" json:"turno"`
	Total int64  `gorm:"column:total" json:"total"`
}

// LoginResponse datos seguros del administrador autenticado
type LoginResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
	Token  string `json:"token"`
}
