package words

var defaultDataset = []Entry{
	MustNew("Aeropuerto", "Pista", "Sala de embarque", "Control", "Tiendas", "Torre"),
	MustNew("Restaurante", "Camarero", "Carta", "Propina", "Chef", "Reserva"),
	MustNew("Estadio", "Grada", "Marcador", "Árbitro", "Butacas", "Himno"),
	MustNew("Hospital", "Urgencias", "Quirófano", "Camilla", "Bata", "Monitor"),
	MustNew("Biblioteca", "Silencio", "Carnet", "Estanterías", "Préstamo", "Estudiar"),
	MustNew("Playa", "Sombrilla", "Arena", "Socorrista", "Chiringuito", "Olas"),
	MustNew("Montaña", "Nevada", "Senderismo", "Refugio", "Altitud", "Osos"),
	MustNew("Cine", "Palomitas", "Pantalla", "Oscuro", "Taquilla", "Butacas"),
	MustNew("Mercado", "Fruta", "Centro", "Olores", "Carrito", "Pescadería"),
	MustNew("Barco", "Cubierta", "Ancla", "Capitán", "Mar", "Salvavidas"),
}

// Default returns the built-in word list.
func Default() []Entry {
	return append([]Entry(nil), defaultDataset...)
}
