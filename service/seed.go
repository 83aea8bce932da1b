package service

import (
	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/models"
)

// CatalogoInicial is the stock catalog loaded by the reset endpoint.
func CatalogoInicial() []models.Producto {
	producto := func(nombre, descripcion, precio string, stock int, categoria, imagen string) models.Producto {
		return models.Producto{
			Nombre:      nombre,
			Descripcion: descripcion,
			Precio:      decimal.RequireFromString(precio),
			Stock:       stock,
			Categoria:   categoria,
			ImagenURL:   imagen,
		}
	}
	return []models.Producto{
		producto("Arroz Costeño Extra", "Arroz extra calidad 1kg", "4.50", 100, "Abarrotes", "https://example.com/arroz.jpg"),
		producto("Aceite Primor Vegetal", "Aceite vegetal 1L", "12.80", 50, "Aceites", "https://example.com/aceite.jpg"),
		producto("Atún Florida en Aceite", "Lata de atún en aceite 170g", "6.50", 80, "Conservas", "https://example.com/atun.jpg"),
		producto("Fideos Don Vittorio Tallarín", "Fideo tallarín 400g", "3.20", 120, "Pastas", "https://example.com/fideos.jpg"),
		producto("Leche Gloria Evaporada", "Leche evaporada 400g", "4.80", 60, "Lácteos", "https://example.com/leche.jpg"),
		producto("Azúcar Rubia Blanca", "Azúcar blanca 1kg", "3.80", 90, "Abarrotes", "https://example.com/azucar.jpg"),
		producto("Café Altomayo Instantáneo", "Café instantáneo 50g", "8.90", 70, "Bebidas", "https://example.com/cafe.jpg"),
		producto("Harina Blanca Flor", "Harina de trigo 1kg", "3.50", 85, "Abarrotes", "https://example.com/harina.jpg"),
		producto("Huevos Rojos Grandes", "Docena de huevos rojos grandes", "8.50", 75, "Lácteos", "https://example.com/huevos.jpg"),
		producto("Mantequilla Gloria", "Mantequilla 250g", "7.50", 35, "Lácteos", "https://example.com/mantequilla.jpg"),
		producto("Yogurt Gloria Natural", "Yogurt natural 1L", "6.80", 40, "Lácteos", "https://example.com/yogurt.jpg"),
		producto("Gaseosa Inca Kola", "Gaseosa 1.5L", "5.50", 70, "Bebidas", "https://example.com/incakola.jpg"),
		producto("Agua Cielo Sin Gas", "Agua mineral 2L", "3.20", 100, "Bebidas", "https://example.com/agua.jpg"),
		producto("Jugo Pulp Naranja", "Jugo de naranja 1L", "4.80", 50, "Bebidas", "https://example.com/jugo.jpg"),
		producto("Detergente Bolívar", "Detergente en polvo 1kg", "8.50", 40, "Limpieza", "https://example.com/detergente.jpg"),
		producto("Jabón Líquido Ace", "Jabón líquido 500ml", "6.80", 55, "Limpieza", "https://example.com/jabon.jpg"),
		producto("Lavavajillas Sapolio", "Lavavajillas 500ml", "5.20", 45, "Limpieza", "https://example.com/lavavajillas.jpg"),
		producto("Papel Higiénico Elite", "Papel higiénico 4 rollos", "7.80", 65, "Limpieza", "https://example.com/papel.jpg"),
		producto("Sardina en Salsa de Tomate", "Sardina en lata 125g", "4.20", 60, "Conservas", "https://example.com/sardina.jpg"),
		producto("Pan de Molde Bimbo", "Pan de molde 600g", "8.50", 30, "Abarrotes", "https://example.com/pan.jpg"),
		producto("Galletas Soda Field", "Galletas soda 400g", "4.50", 70, "Abarrotes", "https://example.com/galletas.jpg"),
		producto("Mermelada Gloria Durazno", "Mermelada de durazno 500g", "6.80", 40, "Abarrotes", "https://example.com/mermelada.jpg"),
		producto("Sal de Mesa Finita", "Sal fina de mesa 1kg", "2.00", 85, "Abarrotes", "https://example.com/sal.jpg"),
		producto("Vinagre Blanco", "Vinagre alcohol blanco 500ml", "2.80", 60, "Abarrotes", "https://example.com/vinagre.jpg"),
		producto("Chocolate Bon o Bon", "Chocolate relleno 24 unidades", "12.50", 40, "Abarrotes", "https://example.com/bonobon.jpg"),
		producto("Maíz Pira para Palomitas", "Maíz pira para hacer canchita 200g", "3.50", 55, "Abarrotes", "https://example.com/maiz_pira.jpg"),
		producto("Ajinómino", "Sillao botella 200ml", "4.50", 45, "Abarrotes", "https://example.com/sillao.jpg"),
		producto("Caldo de Gallina Maggi", "Caldo de gallina 12 cubos", "3.80", 60, "Abarrotes", "https://example.com/caldo.jpg"),
		producto("Lentejas Partidas", "Lentejas partidas 500g", "4.20", 40, "Abarrotes", "https://example.com/lentejas.jpg"),
		producto("Garbanzos Secos", "Garbanzos secos 500g", "5.50", 35, "Abarrotes", "https://example.com/garbanzos.jpg"),
		producto("Avena Molida", "Avena molida 400g", "3.80", 50, "Abarrotes", "https://example.com/avena.jpg"),
		producto("Menestrón en Sobres", "Menestrón en sobres 80g", "2.50", 70, "Abarrotes", "https://example.com/menestron.jpg"),
	}
}
