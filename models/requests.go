package models

// CrearEmocionRequest cuerpo para crear o actualizar una emoción
type CrearEmocionRequest struct {
	Nombre      string `json:"nombre_emocion" binding:"required,max=100"`
	Descripcion string `json:"descripcion"`
	Puntaje     *int   `json:"puntaje_emocion" binding:"omitempty,min=1,max=10"`
}

// CrearActividadRequest cuerpo para crear o actualizar una actividad
type CrearActividadRequest struct {
	Nombre      string `json:"nombre_actividad" binding:"required,max=255"`
	Descripcion string `json:"descripcion"`
	Tiempo      *int   `json:"tiempo_actividad" binding:"omitempty,min=1"`
}

// CrearEjercicioRequest cuerpo para crear un ejercicio
type CrearEjercicioRequest struct {
	IDActividad uint    `json:"id_actividad" binding:"required"`
	Turno       *string `json:"turno" binding:"omitempty,oneof=mañana tarde noche"`
	Tiempo      *int    `json:"tiempo" binding:"omitempty,min=1"`
}

// ActualizarEjercicioRequest parche de un ejercicio; solo los campos
// presentes se modifican. El estado completado no se toca por aquí.
type ActualizarEjercicioRequest struct {
	Turno  *string `json:"turno" binding:"omitempty,oneof=mañana tarde noche"`
	Tiempo *int    `json:"tiempo" binding:"omitempty,min=1"`
}

// CrearMeditacionRequest cuerpo para crear una meditación
type CrearMeditacionRequest struct {
	IDActividad uint `json:"id_actividad" binding:"required"`
	Tiempo      int  `json:"tiempo_meditacion" binding:"required,min=1"`
}

// ActualizarMeditacionRequest parche de una meditación
type ActualizarMeditacionRequest struct {
	Tiempo *int `json:"tiempo_meditacion" binding:"omitempty,min=1"`
}

// CrearFraseRequest cuerpo para crear o actualizar una frase
type CrearFraseRequest struct {
	Frase     string  `json:"frase" binding:"required,max=255"`
	Autor     *string `json:"autor" binding:"omitempty,max=255"`
	IDEmocion uint    `json:"id_emocion" binding:"required"`
}

// CrearRegistroRequest cuerpo para crear un registro emocional
type CrearRegistroRequest struct {
	IDUsuario uint `json:"id_usuario" binding:"required"`
	IDEmocion uint `json:"id_emocion" binding:"required"`
}

// CrearBitacoraRequest cuerpo para crear una entrada de bitácora
type CrearBitacoraRequest struct {
	IDUsuario  uint    `json:"id_usuario" binding:"required"`
	IDRegistro uint    `json:"id_registro" binding:"required"`
	Nota       *string `json:"nota" binding:"omitempty,max=1000"`
}

// ActualizarNotaRequest cuerpo para actualizar la nota de una bitácora
type ActualizarNotaRequest struct {
	Nota *string `json:"nota" binding:"omitempty,max=1000"`
}

// CrearReporteRequest cuerpo para crear un reporte
type CrearReporteRequest struct {
	IDAdministrador uint    `json:"id_administrador" binding:"required"`
	Pregunta        string  `json:"pregunta" binding:"required,max=255"`
	Respuesta       *string `json:"respuesta" binding:"omitempty,max=1000"`
	Nota            *string `json:"nota" binding:"omitempty,max=1000"`
}

// ActualizarRespuestaRequest cuerpo para contestar un reporte
type ActualizarRespuestaRequest struct {
	Respuesta *string `json:"respuesta" binding:"omitempty,max=1000"`
	Nota      *string `json:"nota" binding:"omitempty,max=1000"`
}

// RegistrarAdminRequest cuerpo para registrar un administrador
type RegistrarAdminRequest struct {
	Nombre     string `json:"nombre" binding:"required,max=255"`
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required,min=8"`
	Rol        string `json:"rol" binding:"omitempty,oneof=superadmin moderador editor"`
}

// ActualizarAdminRequest parche de un administrador; la contraseña solo se
// vuelve a hashear cuando viene un valor nuevo.
type ActualizarAdminRequest struct {
	Nombre     *string `json:"nombre" binding:"omitempty,max=255"`
	Correo     *string `json:"correo" binding:"omitempty,email"`
	Contrasena *string `json:"contrasena" binding:"omitempty,min=8"`
	Rol        *string `json:"rol" binding:"omitempty,oneof=superadmin moderador editor"`
}

// LoginRequest credenciales de un administrador
type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// CrearUsuarioRequest cuerpo para crear un usuario
type CrearUsuarioRequest struct {
	Nombre     string `json:"nombre" binding:"required,max=255"`
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required,min=8"`
	Seccion    string `json:"seccion"`
}

// ActualizarSeccionRequest cuerpo para cambiar la sección de un usuario
type ActualizarSeccionRequest struct {
	Seccion string `json:"seccion" binding:"required"`
}
