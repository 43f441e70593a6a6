package database

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/utils"
	"gorm.io/gorm"
)

type seedItem struct {
	Category    string
	Name        string
	Price       int64
	Image       string
	Description string
	Calories    int
}

var defaultMenu = []seedItem{
	{Category: "HotCoffee", Name: "Americano", Price: 150, Image: "/Images/HotCoffee/Americano.jpg", Description: "Espresso diluted with hot water for a rich, bold flavor.", Calories: 15},
	{Category: "HotCoffee", Name: "Dark Roast", Price: 175, Image: "/Images/HotCoffee/PremiumCoffee.jpg", Description: "Intense and robust dark roast coffee, perfect for a morning boost.", Calories: 20},
	{Category: "HotCoffee", Name: "Cappuccino", Price: 160, Image: "/Images/HotCoffee/Cappuccino.jpg", Description: "Steamed milk foam layered over a shot of espresso.", Calories: 80},
	{Category: "HotCoffee", Name: "Caramel Cappuccino", Price: 175, Image: "/Images/HotCoffee/CaramelCappuccino.jpg", Description: "A cappuccino topped with a sweet caramel drizzle.", Calories: 90},
	{Category: "HotCoffee", Name: "Vanilla Cappuccino", Price: 175, Image: "/Images/HotCoffee/VanillaCappuccino.jpg", Description: "Cappuccino infused with a hint of vanilla for extra smoothness.", Calories: 85},
	{Category: "HotCoffee", Name: "French Vanilla Latte", Price: 190, Image: "/Images/HotCoffee/FrenchVanilla.jpg", Description: "A velvety latte with a subtle French vanilla flavor.", Calories: 110},
	{Category: "HotCoffee", Name: "Classic Roast Latte", Price: 160, Image: "/Images/HotCoffee/Latte.jpg", Description: "A balanced latte with classic roasted coffee flavor.", Calories: 100},
	{Category: "HotCoffee", Name: "Caramel Macchiato", Price: 190, Image: "/Images/HotCoffee/CaramelMacchiato.jpg", Description: "Layered espresso with milk foam and caramel, creating a sweet contrast.", Calories: 120},
	{Category: "HotCoffee", Name: "Classic Mocha Latte", Price: 210, Image: "/Images/HotCoffee/Mocha.jpg", Description: "A delightful blend of espresso, chocolate, and steamed milk.", Calories: 130},
	{Category: "ColdCoffee", Name: "Classic Iced Coffee", Price: 200, Image: "/Images/ColdCoffee/IcedCoffee.jpg", Description: "A refreshing iced coffee served over ice.", Calories: 80},
	{Category: "ColdCoffee", Name: "Iced Caramel Coffee", Price: 220, Image: "/Images/ColdCoffee/IcedCaramelCoffee.jpg", Description: "Iced coffee with a sweet caramel infusion.", Calories: 90},
	{Category: "ColdCoffee", Name: "Caramel Frappe", Price: 250, Image: "/Images/ColdCoffee/CaramelFrappe.jpg", Description: "A blended frappe with rich caramel flavor.", Calories: 150},
	{Category: "ColdCoffee", Name: "Iced Macchiato", Price: 220, Image: "/Images/ColdCoffee/IcedCaramelMacchiato.jpg", Description: "Layered iced espresso with a touch of milk.", Calories: 100},
	{Category: "ColdCoffee", Name: "Classic Iced Mocha", Price: 220, Image: "/Images/ColdCoffee/IcedMocha.jpg", Description: "Iced mocha with a perfect blend of chocolate and coffee.", Calories: 110},
	{Category: "ColdCoffee", Name: "Iced Mocha Frappe", Price: 250, Image: "/Images/ColdCoffee/MochaFrappe.jpg", Description: "A creamy blended mocha frappe served chilled.", Calories: 140},
	{Category: "ColdCoffee", Name: "French Vanilla Latte", Price: 220, Image: "/Images/ColdCoffee/IcedFrenchVanillaLatte.jpg", Description: "Chilled latte enhanced with French vanilla essence.", Calories: 120},
	{Category: "Snacks", Name: "Classic Stuffed Bagel", Price: 200, Image: "/Images/Snacks/Bagel.png", Description: "A freshly baked bagel stuffed with herbed cream cheese.", Calories: 300},
	{Category: "Snacks", Name: "Veg Cheese Burger", Price: 220, Image: "/Images/Snacks/cheeseBurger.jpeg", Description: "A hearty veggie burger topped with melted cheese.", Calories: 350},
	{Category: "Snacks", Name: "Cheese Chili Toast", Price: 250, Image: "/Images/Snacks/CheeseToast.png", Description: "Toasted bread topped with spicy cheese and chili.", Calories: 250},
	{Category: "Snacks", Name: "Deluxe Cheese Burger", Price: 250, Image: "/Images/Snacks/DeluxBurger.jpeg", Description: "A gourmet burger loaded with cheese, veggies, and a special sauce.", Calories: 450},
	{Category: "Snacks", Name: "Spicy Snack Wrap", Price: 220, Image: "/Images/Snacks/SnackWrap.jpg", Description: "topped with shredded cheese and shredded lettuce", Calories: 380},
	{Category: "Snacks", Name: "Classic Pan Cakes", Price: 175, Image: "/Images/Snacks/Hotcakes.jpeg", Description: "Light and fluffy pancakes served with maple syrup.", Calories: 400},
	{Category: "Desserts", Name: "Classic Vanilla Shake", Price: 175, Image: "/Images/Desserts/VanillaShake.jpg", Description: "A smooth vanilla shake made with real vanilla beans.", Calories: 350},
	{Category: "Desserts", Name: "Chocolate Shake", Price: 180, Image: "/Images/Desserts/ChocolateShake.jpg", Description: "A rich, creamy chocolate shake for dessert lovers.", Calories: 370},
	{Category: "Desserts", Name: "Premium Hot Chocolate", Price: 220, Image: "/Images/Desserts/HotChocolate.jpg", Description: "Decadent hot chocolate topped with whipped cream.", Calories: 420},
	{Category: "Desserts", Name: "Hot Fudge Sundae", Price: 175, Image: "/Images/Desserts/HotFudgeSundae.jpg", Description: "An ice cream sundae drizzled with warm hot fudge.", Calories: 500},
	{Category: "Desserts", Name: "SoftServe Cone", Price: 120, Image: "/Images/Desserts/VanillaCone.jpg", Description: "Classic soft serve ice cream in a crispy cone.", Calories: 300},
	{Category: "Desserts", Name: "M&M SoftServe", Price: 175, Image: "/Images/Desserts/MandMSoftServe.jpg", Description: "Soft serve ice cream mixed with crunchy M&M's.", Calories: 320},
	{Category: "Desserts", Name: "OREO SoftServe", Price: 175, Image: "/Images/Desserts/OREOSoftServe.jpg", Description: "Soft serve blended with crushed Oreos.", Calories: 310},
	{Category: "Desserts", Name: "ChocolateChip Cookie", Price: 120, Image: "/Images/Desserts/ChocolateChipCookie.jpg", Description: "A freshly baked cookie loaded with chocolate chips.", Calories: 220},
	{Category: "Desserts", Name: "Baked ApplePie", Price: 110, Image: "/Images/Desserts/BakedApplePie.jpg", Description: "A warm apple pie with a flaky crust and spiced filling.", Calories: 280},
	{Category: "Desserts", Name: "Classic Cheese Cake", Price: 230, Image: "/Images/Desserts/Cheesecake.png", Description: "Rich and creamy cheesecake with a graham cracker crust.", Calories: 450},
	{Category: "Desserts", Name: "Chocolate Donut", Price: 220, Image: "/Images/Desserts/ChocolateDonut.png", Description: "A soft, glazed chocolate donut.", Calories: 350},
}

// SeedMenu fills an empty catalog with the default café menu. A catalog that
// already has items is left alone.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := make([]models.MenuItem, 0, len(defaultMenu))
	for _, s := range defaultMenu {
		items = append(items, models.MenuItem{
			Name:        s.Name,
			Description: s.Description,
			Price:       decimal.NewFromInt(s.Price),
			Category:    s.Category,
			Calories:    s.Calories,
			Image:       s.Image,
		})
	}
	if err := db.CreateInBatches(items, 50).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
	return nil
}
