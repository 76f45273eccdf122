package geocode

// LadaInfo is the approximate location of a Mexican area code (or, for
// international numbers, of a country's capital).
type LadaInfo struct {
	Lada   string  `json:"lada"`
	Ciudad string  `json:"ciudad"`
	Estado string  `json:"estado"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// LADAS lists Mexican area codes with the coordinates of their main city.
var LADAS = []LadaInfo{
	{Lada: "55", Ciudad: "Ciudad de México", Estado: "CDMX", Lat: 19.432608, Lng: -99.133209},
	{Lada: "56", Ciudad: "Ciudad de México", Estado: "CDMX", Lat: 19.432608, Lng: -99.133209},

	{Lada: "33", Ciudad: "Guadalajara", Estado: "Jalisco", Lat: 20.659698, Lng: -103.349609},
	{Lada: "376", Ciudad: "Puerto Vallarta", Estado: "Jalisco", Lat: 20.653407, Lng: -105.225113},

	{Lada: "81", Ciudad: "Monterrey", Estado: "Nuevo León", Lat: 25.686614, Lng: -100.316116},

	{Lada: "744", Ciudad: "Acapulco", Estado: "Guerrero", Lat: 16.853109, Lng: -99.823653},
	{Lada: "762", Ciudad: "Chilpancingo", Estado: "Guerrero", Lat: 17.550819, Lng: -99.500441},

	{Lada: "222", Ciudad: "Puebla", Estado: "Puebla", Lat: 19.041297, Lng: -98.2062},
	{Lada: "999", Ciudad: "Mérida", Estado: "Yucatán", Lat: 20.96737, Lng: -89.592585},
	{Lada: "442", Ciudad: "Querétaro", Estado: "Querétaro", Lat: 20.588793, Lng: -100.389888},

	{Lada: "477", Ciudad: "León", Estado: "Guanajuato", Lat: 21.122119, Lng: -101.68406},
	{Lada: "473", Ciudad: "Guanajuato", Estado: "Guanajuato", Lat: 21.017654, Lng: -101.257066},
	{Lada: "462", Ciudad: "Irapuato", Estado: "Guanajuato", Lat: 20.674143, Lng: -101.356415},

	{Lada: "229", Ciudad: "Veracruz", Estado: "Veracruz", Lat: 19.173773, Lng: -96.134224},
	{Lada: "228", Ciudad: "Xalapa", Estado: "Veracruz", Lat: 19.544180, Lng: -96.910012},

	{Lada: "961", Ciudad: "Tuxtla Gutiérrez", Estado: "Chiapas", Lat: 16.751914, Lng: -93.113751},
	{Lada: "951", Ciudad: "Oaxaca", Estado: "Oaxaca", Lat: 17.073184, Lng: -96.726608},

	{Lada: "664", Ciudad: "Tijuana", Estado: "Baja California", Lat: 32.514948, Lng: -117.038208},
	{Lada: "686", Ciudad: "Mexicali", Estado: "Baja California", Lat: 32.624630, Lng: -115.452778},
	{Lada: "612", Ciudad: "La Paz", Estado: "Baja California Sur", Lat: 24.142220, Lng: -110.312738},
	{Lada: "624", Ciudad: "Cabo San Lucas", Estado: "Baja California Sur", Lat: 22.890533, Lng: -109.916737},

	{Lada: "662", Ciudad: "Hermosillo", Estado: "Sonora", Lat: 29.072967, Lng: -110.955919},
	{Lada: "614", Ciudad: "Chihuahua", Estado: "Chihuahua", Lat: 28.632996, Lng: -106.069103},
	{Lada: "656", Ciudad: "Ciudad Juárez", Estado: "Chihuahua", Lat: 31.693680, Lng: -106.424547},
	{Lada: "844", Ciudad: "Saltillo", Estado: "Coahuila", Lat: 25.423889, Lng: -100.995556},
	{Lada: "871", Ciudad: "Torreón", Estado: "Coahuila", Lat: 25.542321, Lng: -103.406189},
	{Lada: "618", Ciudad: "Durango", Estado: "Durango", Lat: 24.027730, Lng: -104.653100},
	{Lada: "667", Ciudad: "Culiacán", Estado: "Sinaloa", Lat: 24.809065, Lng: -107.394012},
	{Lada: "669", Ciudad: "Mazatlán", Estado: "Sinaloa", Lat: 23.249415, Lng: -106.411142},
	{Lada: "311", Ciudad: "Tepic", Estado: "Nayarit", Lat: 21.504200, Lng: -104.894500},
	{Lada: "449", Ciudad: "Aguascalientes", Estado: "Aguascalientes", Lat: 21.880487, Lng: -102.296706},
	{Lada: "492", Ciudad: "Zacatecas", Estado: "Zacatecas", Lat: 22.770850, Lng: -102.583190},
	{Lada: "444", Ciudad: "San Luis Potosí", Estado: "San Luis Potosí", Lat: 22.156471, Lng: -100.985504},
	{Lada: "834", Ciudad: "Tampico", Estado: "Tamaulipas", Lat: 22.233053, Lng: -97.861099},
	{Lada: "899", Ciudad: "Reynosa", Estado: "Tamaulipas", Lat: 26.080890, Lng: -98.297730},
	{Lada: "443", Ciudad: "Morelia", Estado: "Michoacán", Lat: 19.706200, Lng: -101.195300},
	{Lada: "312", Ciudad: "Colima", Estado: "Colima", Lat: 19.245200, Lng: -103.725100},
	{Lada: "722", Ciudad: "Toluca", Estado: "Estado de México", Lat: 19.282800, Lng: -99.655700},
	{Lada: "777", Ciudad: "Cuernavaca", Estado: "Morelos", Lat: 18.921400, Lng: -99.234100},
	{Lada: "771", Ciudad: "Pachuca", Estado: "Hidalgo", Lat: 20.120900, Lng: -98.732900},
	{Lada: "246", Ciudad: "Tlaxcala", Estado: "Tlaxcala", Lat: 19.318154, Lng: -98.237392},
	{Lada: "993", Ciudad: "Villahermosa", Estado: "Tabasco", Lat: 17.989557, Lng: -92.947472},
	{Lada: "981", Ciudad: "Campeche", Estado: "Campeche", Lat: 19.830492, Lng: -90.534914},
	{Lada: "998", Ciudad: "Cancún", Estado: "Quintana Roo", Lat: 21.161908, Lng: -86.851528},
	{Lada: "984", Ciudad: "Playa del Carmen", Estado: "Quintana Roo", Lat: 20.627728, Lng: -87.079384},
}

type countryInfo struct {
	Code    string
	Country string
	Capital string
	Lat     float64
	Lng     float64
}

var countryCodes = []countryInfo{
	{Code: "1", Country: "USA/Canadá", Capital: "Washington DC", Lat: 38.9072, Lng: -77.0369},
	{Code: "52", Country: "México", Capital: "Ciudad de México", Lat: 19.432608, Lng: -99.133209},
	{Code: "34", Country: "España", Capital: "Madrid", Lat: 40.4168, Lng: -3.7038},
	{Code: "44", Country: "Reino Unido", Capital: "Londres", Lat: 51.5074, Lng: -0.1278},
	{Code: "33", Country: "Francia", Capital: "París", Lat: 48.8566, Lng: 2.3522},
	{Code: "49", Country: "Alemania", Capital: "Berlín", Lat: 52.5200, Lng: 13.4050},
	{Code: "39", Country: "Italia", Capital: "Roma", Lat: 41.9028, Lng: 12.4964},
	{Code: "55", Country: "Brasil", Capital: "Brasilia", Lat: -15.8267, Lng: -47.9218},
	{Code: "54", Country: "Argentina", Capital: "Buenos Aires", Lat: -34.6037, Lng: -58.3816},
	{Code: "56", Country: "Chile", Capital: "Santiago", Lat: -33.4489, Lng: -70.6693},
	{Code: "57", Country: "Colombia", Capital: "Bogotá", Lat: 4.7110, Lng: -74.0721},
	{Code: "51", Country: "Perú", Capital: "Lima", Lat: -12.0464, Lng: -77.0428},
	{Code: "58", Country: "Venezuela", Capital: "Caracas", Lat: 10.4806, Lng: -66.9036},
	{Code: "86", Country: "China", Capital: "Beijing", Lat: 39.9042, Lng: 116.4074},
	{Code: "81", Country: "Japón", Capital: "Tokio", Lat: 35.6762, Lng: 139.6503},
	{Code: "82", Country: "Corea del Sur", Capital: "Seúl", Lat: 37.5665, Lng: 126.9780},
	{Code: "91", Country: "India", Capital: "Nueva Delhi", Lat: 28.6139, Lng: 77.2090},
}
