package store

import (
	"sort"
	"time"

	"github.com/RodMac08/WellBloomBE/models"
)

// CrearBitacora inserta una entrada de bitácora. El registro emocional debe
// existir y pertenecer al usuario indicado; la verificación cruzada se hace
// aquí antes de escribir.
func (s *Store) CrearBitacora(req models.CrearBitacoraRequest) (*models.BitacoraConDatos, error) {
	var usuarios int64
	if err := s.db.Model(&models.Usuario{}).Where("id_usuario = ?", req.IDUsuario).Count(&usuarios).Error; err != nil {
		return nil, err
	}
	if usuarios == 0 {
		return nil, ErrUsuarioNoEncontrado
	}

	var registro models.RegistroEmocion
	if err := s.db.First(&registro, req.IDRegistro).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrRegistroNoEncontrado
		}
		return nil, err
	}
	if registro.IDUsuario != req.IDUsuario {
		return nil, ErrPropiedad
	}

	bitacora := models.Bitacora{
		IDUsuario:  req.IDUsuario,
		IDRegistro: req.IDRegistro,
		Nota:       req.Nota,
	}
	if err := s.db.Create(&bitacora).Error; err != nil {
		return nil, err
	}

	var creada models.BitacoraConDatos
	err := s.db.Table("Bitacora b").
		Select("b.id_bitacora, b.id_usuario, b.id_registro, b.nota, u.nombre AS usuario_nombre, re.hora_foto, e.nombre_emocion, e.puntaje_emocion").
		Joins("JOIN Usuarios u ON b.id_usuario = u.id_usuario").
		Joins("JOIN RegistroEmocion re ON b.id_registro = re.id_registro").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("b.id_bitacora = ?", bitacora.ID).
		Scan(&creada).Error
	if err != nil {
		return nil, err
	}
	return &creada, nil
}

// BitacorasPorUsuario devuelve una página de las entradas del usuario, de la
// más reciente a la más antigua, con el total independiente
func (s *Store) BitacorasPorUsuario(idUsuario uint, pagina Pagina) ([]models.BitacoraConDatos, int64, error) {
	pagina = pagina.Normalizar()

	var total int64
	err := s.db.Model(&models.Bitacora{}).Where("id_usuario = ?", idUsuario).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	entradas := []models.BitacoraConDatos{}
	err = s.db.Table("Bitacora b").
		Select("b.id_bitacora, b.id_usuario, b.id_registro, b.nota, re.hora_foto, e.nombre_emocion, e.puntaje_emocion").
		Joins("JOIN RegistroEmocion re ON b.id_registro = re.id_registro").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("b.id_usuario = ?", idUsuario).
		Order("b.id_bitacora DESC").
		Limit(pagina.Limit).
		Offset(pagina.Offset).
		Scan(&entradas).Error
	if err != nil {
		return nil, 0, err
	}
	return entradas, total, nil
}

// ObtenerBitacora devuelve la entrada con todos sus datos relacionados
func (s *Store) ObtenerBitacora(id uint) (*models.BitacoraConDatos, error) {
	var entrada models.BitacoraConDatos
	res := s.db.Table("Bitacora b").
		Select("b.id_bitacora, b.id_usuario, b.id_registro, b.nota, u.nombre AS usuario_nombre, u.correo AS usuario_correo, re.hora_foto, e.nombre_emocion, e.descripcion AS descripcion_emocion, e.puntaje_emocion").
		Joins("JOIN Usuarios u ON b.id_usuario = u.id_usuario").
		Joins("JOIN RegistroEmocion re ON b.id_registro = re.id_registro").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("b.id_bitacora = ?", id).
		Scan(&entrada)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &entrada, nil
}

// ActualizarNota cambia la nota de la entrada y relee la fila
func (s *Store) ActualizarNota(id uint, nota *string) (*models.Bitacora, error) {
	var existente models.Bitacora
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	if err := s.db.Model(&existente).Update("nota", nota).Error; err != nil {
		return nil, err
	}

	var actualizada models.Bitacora
	if err := s.db.First(&actualizada, id).Error; err != nil {
		return nil, err
	}
	return &actualizada, nil
}

// EliminarBitacora borra la entrada
func (s *Store) EliminarBitacora(id uint) error {
	res := s.db.Delete(&models.Bitacora{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// ResumenEmocional agrega las entradas del usuario por emoción dentro de una
// ventana de días hacia atrás: conteo, promedio de puntaje y primera/última
// captura. MIN/MAX sobre datetime cambia de tipo según el motor, así que la
// agregación se hace aquí sobre las filas crudas de la ventana.
func (s *Store) ResumenEmocional(idUsuario uint, dias int) ([]models.ResumenEmocion, error) {
	if dias <= 0 {
		dias = 30
	}
	desde := time.Now().AddDate(0, 0, -dias)

	type filaVentana struct {
		IDEmocion      uint      `gorm:"column:id_emocion"`
		NombreEmocion  string    `gorm:"column:nombre_emocion"`
		PuntajeEmocion *int      `gorm:"column:puntaje_emocion"`
		HoraFoto       time.Time `gorm:"column:hora_foto"`
	}
	filas := []filaVentana{}
	err := s.db.Table("Bitacora b").
		Select("e.id_emocion, e.nombre_emocion, e.puntaje_emocion, re.hora_foto").
		Joins("JOIN RegistroEmocion re ON b.id_registro = re.id_registro").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("b.id_usuario = ? AND re.hora_foto >= ?", idUsuario, desde).
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	porEmocion := map[uint]*models.ResumenEmocion{}
	sumas := map[uint]float64{}
	conPuntaje := map[uint]int64{}
	orden := []uint{}
	for _, f := range filas {
		r, visto := porEmocion[f.IDEmocion]
		if !visto {
			r = &models.ResumenEmocion{
				NombreEmocion: f.NombreEmocion,
				PrimeraVez:    f.HoraFoto,
				UltimaVez:     f.HoraFoto,
			}
			porEmocion[f.IDEmocion] = r
			orden = append(orden, f.IDEmocion)
		}
		r.TotalRegistros++
		if f.PuntajeEmocion != nil {
			sumas[f.IDEmocion] += float64(*f.PuntajeEmocion)
			conPuntaje[f.IDEmocion]++
		}
		if f.HoraFoto.Before(r.PrimeraVez) {
			r.PrimeraVez = f.HoraFoto
		}
		if f.HoraFoto.After(r.UltimaVez) {
			r.UltimaVez = f.HoraFoto
		}
	}

	resumen := make([]models.ResumenEmocion, 0, len(orden))
	for _, id := range orden {
		r := porEmocion[id]
		if n := conPuntaje[id]; n > 0 {
			promedio := sumas[id] / float64(n)
			r.PromedioPuntaje = &promedio
		}
		resumen = append(resumen, *r)
	}
	sort.SliceStable(resumen, func(i, j int) bool {
		return resumen[i].TotalRegistros > resumen[j].TotalRegistros
	})
	return resumen, nil
}
