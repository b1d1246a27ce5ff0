package database

import (
	"log"

	"gorm.io/gorm"

	"kikabraids/internal/domain"
)

var initialServices = []domain.Service{
	{Name: "Trenzas Africanas", Price: 150000, Description: "Trenzas clásicas africanas", Image: "img/trenzas.jpg", Category: domain.CategoryWomen},
	{Name: "Trenzas Box Braids", Price: 180000, Description: "Box braids premium", Image: "img/box-braids.jpg", Category: domain.CategoryWomen},
	{Name: "Extensiones Afro", Price: 200000, Description: "Extensiones de cabello afro", Image: "img/extensiones.jpg", Category: domain.CategoryWomen},
	{Name: "Loc o Ganchillos", Price: 160000, Description: "Loc y ganchillos instalados", Image: "img/locs.jpg", Category: domain.CategoryWomen},
	{Name: "Peinado Natural", Price: 85000, Description: "Definición y peinado natural", Image: "img/natural.jpg", Category: domain.CategoryWomen},
	{Name: "Alisado Japonés", Price: 220000, Description: "Alisado profesional", Image: "img/alisado.jpg", Category: domain.CategoryWomen},
	{Name: "Trenzas Hombre", Price: 120000, Description: "Trenzas personalizadas para hombres", Image: "img/trenzas-hombre.jpg", Category: domain.CategoryMen},
	{Name: "Gusanillos", Price: 100000, Description: "Gusanillos con diseño", Image: "img/gusanillos.jpg", Category: domain.CategoryMen},
	{Name: "Definición de Crespo", Price: 80000, Description: "Definición y cuidado de cabello crespo", Image: "img/definicion.jpg", Category: domain.CategoryMen},
	{Name: "Loc Hombre", Price: 140000, Description: "Loc profesional para hombres", Image: "img/loc-hombre.jpg", Category: domain.CategoryMen},
	{Name: "Corte y Definición", Price: 95000, Description: "Corte con líneas y definición", Image: "img/corte.jpg", Category: domain.CategoryMen},
}

// SeedServices inserts the initial catalog when the services table is empty.
// Reruns are no-ops so it is safe to call on every boot.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range initialServices {
		svc := initialServices[i]
		if err := db.Create(&svc).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded %d initial services", len(initialServices))
	return nil
}
