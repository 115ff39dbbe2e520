package main

import (
	"isoko/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StoreModel{},
		model.StoreFollowerModel{},
		model.ProductModel{},
		model.StorePaymentModel{},
		model.AdminNoteModel{},
		model.AdminChatModel{},
		model.AffiliateModel{},
		model.AffiliateEarningModel{},
		model.EventLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
