package entity

// DefaultCategories categorías sugeridas del giro de abarrotes. El conjunto es
// abierto: un producto puede traer cualquier otra categoría capturada a mano.
// La primera se usa como default cuando el borrador no trae categoría.
var DefaultCategories = []string{
	"Abarrotes", "Granos", "Lácteos", "Panadería", "Bebidas", "Limpieza", "Mascotas",
}
