package core

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// DefaultMenu seeds the product catalog on first run. Prices are in Bs.
func DefaultMenu() []Product {
	return []Product{
		{
			ID:        "p_broaster",
			Name:      "Pollo Broaster",
			Price:     dec("11"),
			StockUnit: StockPieces,
			StockCost: dec("1"),
			PlateSize: PlateSmall,
			Recipe: []RecipeLine{
				{InventoryID: "inv_llajua", Quantity: dec("1")},
			},
			Variants: []ProductVariant{
				{ID: "v_1presa", Name: "1 Presa", Price: dec("11"), StockCost: decPtr("1")},
				{ID: "v_2presas", Name: "2 Presas", Price: dec("21"), StockCost: decPtr("2")},
				{ID: "v_medio", Name: "Medio Pollo", Price: dec("42"), StockCost: decPtr("4")},
				{ID: "v_entero", Name: "Pollo Entero", Price: dec("80"), StockCost: decPtr("8")},
			},
			SideOptions: []SideOption{
				{ID: "s_arroz", Name: "Arroz", Recipe: []RecipeLine{
					{InventoryID: "inv_arroz_cocido", Quantity: dec("1")},
				}},
				{ID: "s_fideo", Name: "Fideo", Recipe: []RecipeLine{
					{InventoryID: "inv_fideo", Quantity: dec("0.15")},
				}},
				{ID: "s_papas", Name: "Papas Fritas", Recipe: []RecipeLine{
					{InventoryID: "inv_papa", Quantity: dec("0.3")},
					{InventoryID: "inv_aceite", Quantity: dec("0.05")},
				}},
			},
		},
		{
			ID:        "p_alitas",
			Name:      "Alitas Picantes",
			Price:     dec("15"),
			StockUnit: StockPieces,
			StockCost: dec("2"),
			PlateSize: PlateSmall,
			Recipe: []RecipeLine{
				{InventoryID: "inv_llajua", Quantity: dec("1")},
			},
		},
		{
			ID:        "e_corte",
			Name:      "Corte",
			Price:     dec("3"),
			StockUnit: StockCuts,
			PlateSize: PlateNone,
		},
		{
			ID:        "p_yapa",
			Name:      "Yapa",
			Price:     dec("1"),
			StockUnit: StockCuts,
			PlateSize: PlateNone,
		},
		{
			ID:        "p_mocochinchi",
			Name:      "Refresco de Mocochinchi",
			Price:     dec("4"),
			PlateSize: PlateNone,
		},
	}
}

// DefaultInventory seeds the raw-material stock on first run.
func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "inv_pollo_crudo", Name: "Pollo Crudo", Quantity: decimal.Zero, Unit: "unidades"},
		{ID: "inv_aceite", Name: "Aceite", Quantity: decimal.Zero, Unit: "litros"},
		{ID: "inv_empanizador", Name: "Empanizador", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_arroz", Name: "Arroz", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_arroz_cocido", Name: "Arroz Cocido", Quantity: decimal.Zero, Unit: "porciones"},
		{ID: "inv_fideo", Name: "Fideo", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_papa", Name: "Papa", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_tomate", Name: "Tomate", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_locoto", Name: "Locoto", Quantity: decimal.Zero, Unit: "kg"},
		{ID: "inv_llajua", Name: "Llajua", Quantity: decimal.Zero, Unit: "porciones"},
		{ID: InvNapkins, Name: "Servilletas", Quantity: decimal.Zero, Unit: "unidades"},
		{ID: InvPlateLarge, Name: "Plato Desechable Grande", Quantity: decimal.Zero, Unit: "unidades"},
		{ID: InvPlateSmall, Name: "Plato Desechable Chico", Quantity: decimal.Zero, Unit: "unidades"},
	}
}

// KitchenRules is the fixed production-rule catalog. The first rule is the
// fryer run that ADD_STOCK commands dispatch to.
func KitchenRules() []KitchenProductionRule {
	return []KitchenProductionRule{
		{
			Name: "Freír Pollos",
			Inputs: []RecipeLine{
				{InventoryID: "inv_pollo_crudo", Quantity: dec("1")},
				{InventoryID: "inv_aceite", Quantity: dec("0.25")},
				{InventoryID: "inv_empanizador", Quantity: dec("0.5")},
			},
			Outputs:            RuleOutput{StockLogChicken: 1},
			CookingTimeMinutes: 20,
		},
		{
			Name: "Cocinar Arroz",
			Inputs: []RecipeLine{
				{InventoryID: "inv_arroz", Quantity: dec("1")},
			},
			Outputs:            RuleOutput{InventoryID: "inv_arroz_cocido", Quantity: dec("8")},
			CookingTimeMinutes: 25,
		},
		{
			Name: "Preparar Llajua",
			Inputs: []RecipeLine{
				{InventoryID: "inv_tomate", Quantity: dec("0.2")},
				{InventoryID: "inv_locoto", Quantity: dec("0.05")},
			},
			Outputs: RuleOutput{InventoryID: "inv_llajua", Quantity: dec("10")},
		},
	}
}
