package main

import (
	"storefront-be/internal/model"

	"gorm.io/datatypes"
)

var seedProducts = []model.Product{
	{Name: "Angular Speedster Board 2000", Description: "Lightweight deck for street riding", Price: 200, PictureUrl: "/images/products/sb-ang1.png", Type: "Boards", Brand: "Angular", QuantityInStock: 100, IsActive: true, Attributes: datatypes.JSON(`{"length_cm": 80}`)},
	{Name: "Green Angular Board 3000", Description: "Grippy deck with a wide stance", Price: 150, PictureUrl: "/images/products/sb-ang2.png", Type: "Boards", Brand: "Angular", QuantityInStock: 100, IsActive: true},
	{Name: "Core Board Speed Rush 3", Description: "Stiff deck built for downhill", Price: 180, PictureUrl: "/images/products/sb-core1.png", Type: "Boards", Brand: "NetCore", QuantityInStock: 100, IsActive: true, Attributes: datatypes.JSON(`{"length_cm": 95}`)},
	{Name: "Net Core Super Board", Description: "All-round cruiser", Price: 300, PictureUrl: "/images/products/sb-core2.png", Type: "Boards", Brand: "NetCore", QuantityInStock: 100, IsActive: true},
	{Name: "React Board Super Whizzy Fast", Description: "Short deck for tricks", Price: 250, PictureUrl: "/images/products/sb-react1.png", Type: "Boards", Brand: "React", QuantityInStock: 100, IsActive: true},
	{Name: "Typescript Entry Board", Description: "Beginner friendly deck", Price: 120, PictureUrl: "/images/products/sb-ts1.png", Type: "Boards", Brand: "TypeScript", QuantityInStock: 100, IsActive: true},
	{Name: "Core Blue Hat", Description: "Cotton cap", Price: 10, PictureUrl: "/images/products/hat-core1.png", Type: "Hats", Brand: "NetCore", QuantityInStock: 100, IsActive: true, Attributes: datatypes.JSON(`{"size": "one-size"}`)},
	{Name: "Green React Woolen Hat", Description: "Warm knitted hat", Price: 8, PictureUrl: "/images/products/hat-react1.png", Type: "Hats", Brand: "React", QuantityInStock: 100, IsActive: true},
	{Name: "Purple React Woolen Hat", Description: "Warm knitted hat", Price: 15, PictureUrl: "/images/products/hat-react2.png", Type: "Hats", Brand: "React", QuantityInStock: 100, IsActive: true},
	{Name: "Blue Code Gloves", Description: "Touchscreen gloves", Price: 18, PictureUrl: "/images/products/glove-code1.png", Type: "Gloves", Brand: "VS Code", QuantityInStock: 100, IsActive: true},
	{Name: "Green Code Gloves", Description: "Touchscreen gloves", Price: 15, PictureUrl: "/images/products/glove-code2.png", Type: "Gloves", Brand: "VS Code", QuantityInStock: 100, IsActive: true},
	{Name: "Purple React Gloves", Description: "Padded riding gloves", Price: 16, PictureUrl: "/images/products/glove-react1.png", Type: "Gloves", Brand: "React", QuantityInStock: 100, IsActive: true},
	{Name: "Green React Gloves", Description: "Padded riding gloves", Price: 14, PictureUrl: "/images/products/glove-react2.png", Type: "Gloves", Brand: "React", QuantityInStock: 100, IsActive: true},
	{Name: "Redis Red Boots", Description: "Waterproof boots", Price: 250, PictureUrl: "/images/products/boot-redis1.png", Type: "Boots", Brand: "Redis", QuantityInStock: 100, IsActive: true, Attributes: datatypes.JSON(`{"waterproof": true}`)},
	{Name: "Core Red Boots", Description: "Leather boots", Price: 189.99, PictureUrl: "/images/products/boot-core2.png", Type: "Boots", Brand: "NetCore", QuantityInStock: 100, IsActive: true},
	{Name: "Core Purple Boots", Description: "Leather boots", Price: 199.99, PictureUrl: "/images/products/boot-core1.png", Type: "Boots", Brand: "NetCore", QuantityInStock: 100, IsActive: false},
	{Name: "Angular Purple Boots", Description: "Suede boots", Price: 150, PictureUrl: "/images/products/boot-ang2.png", Type: "Boots", Brand: "Angular", QuantityInStock: 100, IsActive: true},
	{Name: "Angular Blue Boots", Description: "Suede boots", Price: 180, PictureUrl: "/images/products/boot-ang1.png", Type: "Boots", Brand: "Angular", QuantityInStock: 0, IsActive: false},
}
