package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guillenLawn/bodega-backend/auth"
	"github.com/guillenLawn/bodega-backend/controller"
	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/repository"
	"github.com/guillenLawn/bodega-backend/routes"
	"github.com/guillenLawn/bodega-backend/service"
)

type testAPI struct {
	engine    *gin.Engine
	store     *repository.MemoryStore
	productos *repository.MemoryProductos
	usuarios  *service.UserService
	tokens    *auth.Service
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	productosRepo := repository.NewMemoryProductos(store)
	usuariosRepo := repository.NewMemoryUsuarios(store)
	pedidosRepo := repository.NewMemoryPedidos(store)

	cache := service.NewProductoCache(nil)
	tokens := auth.NewService("secreto-de-prueba")

	usuariosSvc := service.NewUserService(usuariosRepo)
	productosSvc := service.NewProductService(productosRepo, cache)
	pedidosSvc := service.NewOrderService(productosRepo, pedidosRepo, store, cache, models.EstadoPendiente)
	statsSvc := service.NewStatsService(store)

	ct := controller.New(usuariosSvc, productosSvc, pedidosSvc, statsSvc, store, tokens)

	engine := gin.New()
	routes.Register(engine, ct, tokens, nil)

	return &testAPI{
		engine:    engine,
		store:     store,
		productos: productosRepo,
		usuarios:  usuariosSvc,
		tokens:    tokens,
	}
}

func (a *testAPI) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (a *testAPI) clienteToken(t *testing.T, email string) string {
	t.Helper()
	usuario, err := a.usuarios.Registrar(context.Background(), email, "secreto1", "Cliente")
	require.NoError(t, err)
	token, err := a.tokens.Issue(usuario)
	require.NoError(t, err)
	return token
}

func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()
	admin, err := a.usuarios.CrearAdmin(context.Background(), "admin@bodega.com", "admin123", "Admin")
	require.NoError(t, err)
	token, err := a.tokens.Issue(admin)
	require.NoError(t, err)
	return token
}

func (a *testAPI) producto(t *testing.T, nombre, precio string, stock int) *models.Producto {
	t.Helper()
	p := models.Producto{Nombre: nombre, Precio: decimal.RequireFromString(precio), Stock: stock}
	require.NoError(t, a.productos.Create(context.Background(), &p))
	return &p
}

func TestRegisterLoginVerify(t *testing.T) {
	api := setupAPI(t)

	w := api.doJSON(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "maria@bodega.com", "password": "secreto1", "nombre": "María",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// duplicate email
	w = api.doJSON(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "maria@bodega.com", "password": "otraclave", "nombre": "Otra",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// short password
	w = api.doJSON(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "pepe@bodega.com", "password": "corta", "nombre": "Pepe",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// login
	w = api.doJSON(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "maria@bodega.com", "password": "secreto1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.doJSON(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "maria@bodega.com", "password": "incorrecta",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// verify echoes claims
	w = api.doJSON(t, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	user, _ := body["user"].(map[string]any)
	require.Equal(t, "maria@bodega.com", user["email"])
	require.Equal(t, string(models.RolCliente), user["rol"])

	// no token
	w = api.doJSON(t, http.MethodGet, "/api/auth/verify", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCrearPedidoHTTP(t *testing.T) {
	api := setupAPI(t)
	token := api.clienteToken(t, "cliente@bodega.com")
	arroz := api.producto(t, "Arroz", "4.50", 100)
	cafe := api.producto(t, "Café", "8.90", 70)

	payload := gin.H{
		"items": []gin.H{
			{"id": arroz.ID, "nombre": "Arroz", "cantidad": 2, "precio": 4.50},
			{"id": cafe.ID, "nombre": "Café", "cantidad": 1, "precio": 8.90},
		},
		"total":      17.90,
		"direccion":  "Av. Principal 123",
		"metodoPago": "tarjeta",
	}

	// unauthenticated
	w := api.doJSON(t, http.MethodPost, "/api/pedidos", "", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.doJSON(t, http.MethodPost, "/api/pedidos", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	pedido, _ := body["pedido"].(map[string]any)
	require.Equal(t, "17.9", pedido["total"])
	require.Len(t, pedido["items"], 2)

	despues, err := api.productos.GetByID(context.Background(), arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 98, despues.Stock)

	// own orders listing
	w = api.doJSON(t, http.MethodGet, "/api/pedidos/usuario", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	pedidos, _ := body["pedidos"].([]any)
	require.Len(t, pedidos, 1)
}

func TestCrearPedidoHTTP_TotalInvalido(t *testing.T) {
	api := setupAPI(t)
	token := api.clienteToken(t, "cliente@bodega.com")
	arroz := api.producto(t, "Arroz", "4.50", 100)

	w := api.doJSON(t, http.MethodPost, "/api/pedidos", token, gin.H{
		"items": []gin.H{{"id": arroz.ID, "cantidad": 2, "precio": 4.50}},
		"total": 1.00,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	despues, err := api.productos.GetByID(context.Background(), arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 100, despues.Stock)
}

func TestPedidosAdminGating(t *testing.T) {
	api := setupAPI(t)
	cliente := api.clienteToken(t, "cliente@bodega.com")
	admin := api.adminToken(t)

	w := api.doJSON(t, http.MethodGet, "/api/pedidos/all", cliente, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.doJSON(t, http.MethodGet, "/api/pedidos/all", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.doJSON(t, http.MethodGet, "/api/estadisticas", cliente, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.doJSON(t, http.MethodGet, "/api/estadisticas", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "estadisticas")
}

func TestCambiarEstadoHTTP(t *testing.T) {
	api := setupAPI(t)
	cliente := api.clienteToken(t, "cliente@bodega.com")
	admin := api.adminToken(t)
	arroz := api.producto(t, "Arroz", "4.50", 100)

	w := api.doJSON(t, http.MethodPost, "/api/pedidos", cliente, gin.H{
		"items": []gin.H{{"id": arroz.ID, "cantidad": 1, "precio": 4.50}},
		"total": 4.50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	pedido, _ := body["pedido"].(map[string]any)
	id := int(pedido["id"].(float64))

	// clients cannot transition orders
	w = api.doJSON(t, http.MethodPut, "/api/pedidos/1/estado", cliente, gin.H{"estado": "completado"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.doJSON(t, http.MethodPut, "/api/pedidos/"+strconv.Itoa(id)+"/estado", admin, gin.H{"estado": "en_proceso"})
	require.Equal(t, http.StatusOK, w.Code)

	// backwards transition rejected
	w = api.doJSON(t, http.MethodPut, "/api/pedidos/"+strconv.Itoa(id)+"/estado", admin, gin.H{"estado": "pendiente"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown state rejected
	w = api.doJSON(t, http.MethodPut, "/api/pedidos/"+strconv.Itoa(id)+"/estado", admin, gin.H{"estado": "enviado"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = api.doJSON(t, http.MethodPut, "/api/pedidos/999/estado", admin, gin.H{"estado": "cancelado"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryHTTP(t *testing.T) {
	api := setupAPI(t)
	token := api.clienteToken(t, "cliente@bodega.com")

	// public listing
	w := api.doJSON(t, http.MethodGet, "/api/inventory", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// writes need a token
	w = api.doJSON(t, http.MethodPost, "/api/inventory", "", gin.H{"name": "Arroz", "price": 4.50, "quantity": 10})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.doJSON(t, http.MethodPost, "/api/inventory", token, gin.H{
		"name": "Arroz", "category": "Abarrotes", "quantity": 10, "price": 4.50, "marca": "Costeño",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	producto, _ := body["producto"].(map[string]any)
	id := int(producto["id"].(float64))
	require.Equal(t, "Costeño", producto["marca"])

	w = api.doJSON(t, http.MethodPut, "/api/inventory/"+strconv.Itoa(id), token, gin.H{
		"name": "Arroz Extra", "category": "Abarrotes", "quantity": 20, "price": 4.80,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.doJSON(t, http.MethodDelete, "/api/inventory/"+strconv.Itoa(id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.doJSON(t, http.MethodDelete, "/api/inventory/"+strconv.Itoa(id), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetProductosHTTP(t *testing.T) {
	api := setupAPI(t)
	cliente := api.clienteToken(t, "cliente@bodega.com")
	admin := api.adminToken(t)

	w := api.doJSON(t, http.MethodPost, "/api/reset-productos", cliente, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = api.doJSON(t, http.MethodPost, "/api/reset-productos", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(32), body["total_productos"])

	w = api.doJSON(t, http.MethodGet, "/api/inventory", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var productos []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productos))
	require.Len(t, productos, 32)
}

