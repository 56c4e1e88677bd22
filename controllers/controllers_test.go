package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.RegistrarNombresJSON()
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrarDB(db))
	return store.New(db)
}

// ejecutar arma y despacha una petición JSON contra el router
func ejecutar(t *testing.T, r *gin.Engine, metodo, ruta string, cuerpo interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var lector *bytes.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		lector = bytes.NewReader(datos)
	} else {
		lector = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(metodo, ruta, lector)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var respuesta map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respuesta))
	return respuesta
}
