package catalog

import "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"

// demoProducts returns a fresh copy of the embedded dataset. A representative
// slice of the real index: mixed brands, price points, and portability, so
// fallback answers stay plausible for the common shopping scenarios.
func demoProducts() []domain.Product {
	return []domain.Product{
		{
			ObjectID:       "demo-1",
			Name:           "HP Laptop 15\" Intel Core i5 16GB RAM 512GB SSD",
			Brand:          "HP",
			PriceSale:      2499000,
			PriceList:      2899000,
			RAM:            "16 GB",
			Storage:        "512 GB SSD",
			Processor:      "Intel Core i5-1235U",
			ProcessorBrand: "Intel",
			WeightKg:       1.69,
			BatteryHours:   8.0,
			ScreenSize:     "15.6 Pulgadas",
			OS:             "Windows",
			InStock:        true,
			Stock:          45,
			KeyFeatures: []string{
				"Procesador Intel Core i5 de 12va generación",
				"16GB RAM para multitarea fluida",
				"Disco SSD 512GB de alta velocidad",
			},
			URL: "https://www.alkosto.com/laptop-hp-15-intel-core-i5",
		},
		{
			ObjectID:       "demo-2",
			Name:           "ASUS VivoBook 14\" AMD Ryzen 5 8GB RAM 256GB SSD",
			Brand:          "ASUS",
			PriceSale:      1999000,
			PriceList:      2299000,
			RAM:            "8 GB",
			Storage:        "256 GB SSD",
			Processor:      "AMD Ryzen 5 5500U",
			ProcessorBrand: "AMD",
			WeightKg:       1.40,
			BatteryHours:   10.0,
			ScreenSize:     "14 Pulgadas",
			OS:             "Windows",
			InStock:        true,
			Stock:          23,
			KeyFeatures: []string{
				"Diseño ultradelgado y ligero (1.4kg)",
				"Procesador AMD Ryzen 5 eficiente",
				"Pantalla NanoEdge con bordes delgados",
			},
			URL: "https://www.alkosto.com/asus-vivobook-14-amd",
		},
		{
			ObjectID:       "demo-3",
			Name:           "Lenovo IdeaPad 3 15.6\" Intel Core i3 8GB RAM 256GB SSD",
			Brand:          "LENOVO",
			PriceSale:      1799000,
			PriceList:      1999000,
			RAM:            "8 GB",
			Storage:        "256 GB SSD",
			Processor:      "Intel Core i3-1115G4",
			ProcessorBrand: "Intel",
			WeightKg:       1.70,
			BatteryHours:   7.5,
			ScreenSize:     "15.6 Pulgadas",
			OS:             "Windows",
			InStock:        true,
			Stock:          67,
			KeyFeatures: []string{
				"Excelente relación precio-rendimiento",
				"Pantalla HD antirreflejo",
				"Ideal para estudiantes y oficina",
			},
			URL: "https://www.alkosto.com/lenovo-ideapad-3-15",
		},
		{
			ObjectID:       "demo-4",
			Name:           "MacBook Air 13\" Chip M2 8GB RAM 256GB SSD",
			Brand:          "APPLE",
			PriceSale:      4599000,
			PriceList:      5299000,
			RAM:            "8 GB",
			Storage:        "256 GB SSD",
			Processor:      "Apple M2",
			ProcessorBrand: "Apple",
			WeightKg:       1.24,
			BatteryHours:   18.0,
			ScreenSize:     "13.6 Pulgadas",
			OS:             "macOS",
			InStock:        true,
			Stock:          8,
			KeyFeatures: []string{
				"Chip M2 con eficiencia líder",
				"Hasta 18 horas de batería",
				"Diseño de 1.24kg en aluminio",
			},
			URL: "https://www.alkosto.com/macbook-air-13-m2",
		},
		{
			ObjectID:       "demo-5",
			Name:           "Acer Aspire 3 15.6\" AMD Ryzen 3 8GB RAM 256GB SSD",
			Brand:          "ACER",
			PriceSale:      1399000,
			PriceList:      1599000,
			RAM:            "8 GB",
			Storage:        "256 GB SSD",
			Processor:      "AMD Ryzen 3 7320U",
			ProcessorBrand: "AMD",
			WeightKg:       1.78,
			BatteryHours:   6.5,
			ScreenSize:     "15.6 Pulgadas",
			OS:             "Windows",
			InStock:        true,
			Stock:          31,
			KeyFeatures: []string{
				"Precio de entrada con SSD",
				"Pantalla Full HD",
				"Teclado numérico completo",
			},
			URL: "https://www.alkosto.com/acer-aspire-3-15",
		},
		{
			ObjectID:       "demo-6",
			Name:           "Dell Inspiron 14\" Intel Core i7 16GB RAM 512GB SSD",
			Brand:          "DELL",
			PriceSale:      3299000,
			PriceList:      3699000,
			RAM:            "16 GB",
			Storage:        "512 GB SSD",
			Processor:      "Intel Core i7-1355U",
			ProcessorBrand: "Intel",
			WeightKg:       1.58,
			BatteryHours:   11.0,
			ScreenSize:     "14 Pulgadas",
			OS:             "Windows",
			InStock:        false,
			Stock:          0,
			KeyFeatures: []string{
				"Core i7 de 13va generación",
				"Chasis compacto de 14 pulgadas",
				"Carga rápida ExpressCharge",
			},
			URL: "https://www.alkosto.com/dell-inspiron-14-i7",
		},
	}
}
