// Package seed loads the curated product catalog into the store. The
// catalog is static data; products are never mutated at runtime.
package seed

import (
	"log"

	"tribaltides/internal/models"
	"tribaltides/internal/repositories"
)

// Catalog returns the curated category-based product catalog.
func Catalog() []models.Product {
	return []models.Product{
		{
			Name:        "Kaftan Dress",
			Category:    "Women's Wear",
			Price:       2499.00,
			Description: "Flowing kaftan with modern tribal embroidery and an easy coastal fit.",
			Material:    "Breathable Linen",
			Sizes:       "XS,S,M,L,XL",
			ImageURL:    imagePath("kaftan_dress.jpg"),
		},
		{
			Name:        "Crochet Top",
			Category:    "Women's Wear",
			Price:       1999.00,
			Description: "Hand-knotted crochet top inspired by shoreline textures.",
			Material:    "Cotton Yarn",
			Sizes:       "XS,S,M,L",
			ImageURL:    imagePath("crochet_top.jpg"),
		},
		{
			Name:        "Maxi Dress",
			Category:    "Women's Wear",
			Price:       2899.00,
			Description: "Resort-ready maxi dress with wave motifs and a relaxed silhouette.",
			Material:    "Cotton & Viscose",
			Sizes:       "S,M,L,XL",
			ImageURL:    imagePath("maxi_dress.jpg"),
		},
		{
			Name:        "Linen Shirt",
			Category:    "Men's Wear",
			Price:       2199.00,
			Description: "Lightweight linen shirt with subtle tribal piping on the placket.",
			Material:    "100% Linen",
			Sizes:       "S,M,L,XL,XXL",
			ImageURL:    imagePath("linen_shirt.jpg"),
		},
		{
			Name:        "Resort Shorts",
			Category:    "Men's Wear",
			Price:       1599.00,
			Description: "Relaxed-fit resort shorts with woven belt detail and coconut buttons.",
			Material:    "Linen & Cotton",
			Sizes:       "S,M,L,XL,XXL",
			ImageURL:    imagePath("resort_shorts.jpg"),
		},
		{
			Name:        "Boho Bag",
			Category:    "Accessories",
			Price:       1899.00,
			Description: "Fringed boho bag with beadwork and a roomy interior for beach days.",
			Material:    "Woven Jute & Leather",
			Sizes:       "One Size",
			ImageURL:    imagePath("boho_bag.jpg"),
		},
		{
			Name:        "Beaded Anklet",
			Category:    "Accessories",
			Price:       799.00,
			Description: "Stackable anklet featuring seed beads and shell charms.",
			Material:    "Glass Beads & Shell",
			Sizes:       "Adjustable",
			ImageURL:    imagePath("beaded_anklet.jpg"),
		},
		{
			Name:        "Woven Sandals",
			Category:    "Footwear",
			Price:       2299.00,
			Description: "Handwoven sandals with cushioned footbeds for all-day comfort.",
			Material:    "Leather & Raffia",
			Sizes:       "5,6,7,8,9,10",
			ImageURL:    imagePath("woven_sandals.jpg"),
		},
		{
			Name:        "Beaded Flats",
			Category:    "Footwear",
			Price:       1999.00,
			Description: "Slide-on flats detailed with coral-inspired beadwork.",
			Material:    "Vegan Leather",
			Sizes:       "5,6,7,8,9,10",
			ImageURL:    imagePath("beaded_flats.jpg"),
		},
		{
			Name:        "Shell Necklace",
			Category:    "Jewelry / Chains",
			Price:       1299.00,
			Description: "Layered shell necklace with hammered metal charms.",
			Material:    "Shell & Brass",
			Sizes:       "One Size",
			ImageURL:    imagePath("shell_necklace.jpg"),
		},
		{
			Name:        "Tribal Earrings",
			Category:    "Jewelry / Chains",
			Price:       999.00,
			Description: "Statement earrings with etched tribal discs and bead drops.",
			Material:    "Brass & Glass",
			Sizes:       "One Size",
			ImageURL:    imagePath("tribal_earrings.jpg"),
		},
		{
			Name:        "Coastal Nude Tint",
			Category:    "Beauty (Lip Shades)",
			Price:       649.00,
			Description: "Moisturizing lip tint that delivers a soft nude sheen.",
			Material:    "Aloe, Coconut Oil",
			Sizes:       "One Size",
			ImageURL:    imagePath("coastal_nude_tint.jpg"),
		},
		{
			Name:        "Coral Lip Tint",
			Category:    "Beauty (Lip Shades)",
			Price:       599.00,
			Description: "Buildable coral tint with SPF protection for beach days.",
			Material:    "Shea Butter, Mineral Pigments",
			Sizes:       "One Size",
			ImageURL:    imagePath("coral_lip_tint.jpg"),
		},
		{
			Name:        "Neo Tribal Minimal",
			Category:    "Tattoo Styles (Temporary)",
			Price:       349.00,
			Description: "Minimalist temporary tattoo set with crisp tribal lines.",
			Material:    "Non-toxic Temporary Ink",
			Sizes:       "Small, Medium",
			ImageURL:    imagePath("neo_tribal_minimal.jpg"),
		},
		{
			Name:        "Wave Stripe Tattoo",
			Category:    "Tattoo Styles (Temporary)",
			Price:       329.00,
			Description: "Wave stripe temporary tattoo inspired by tidal patterns.",
			Material:    "Non-toxic Temporary Ink",
			Sizes:       "Medium, Large",
			ImageURL:    imagePath("wave_stripe_tattoo.jpg"),
		},
	}
}

func imagePath(filename string) string {
	return "/static/images/products/" + filename
}

// Run replaces the catalog with the curated product set.
func Run(repo repositories.ProductRepository) error {
	products := Catalog()
	if err := repo.Replace(products); err != nil {
		return err
	}
	log.Printf("Seeded %d products successfully", len(products))
	return nil
}

// EnsureSeeded seeds the catalog only when the product table is empty,
// so restarts do not clobber an already-seeded store.
func EnsureSeeded(repo repositories.ProductRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return Run(repo)
}
