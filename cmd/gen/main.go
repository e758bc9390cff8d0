package main

import (
	"campustrace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.MagicLinkModel{},
		model.UniversityModel{},
		model.ItemModel{},
		model.ClaimModel{},
		model.NotificationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
