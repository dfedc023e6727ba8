package main

import (
	"gin-catalog/infra"
	"gin-catalog/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.Owner{}, &models.Category{}, &models.Image{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}

	// セッション失効リスト用のSQLiteデータベースのマイグレーション
	sessionDB := infra.SetupSessionDB()
	if err := sessionDB.AutoMigrate(&models.RevokedSession{}); err != nil {
		panic("Failed to migrate revoked session database")
	}
}
