package catalog

import "saree-store/internal/models"

// products is the static catalog. Ids are unique and ascending; higher id
// means more recently added, which the "newest" sort relies on.
var products = []models.Product{
	{
		ID:          1,
		Name:        "Royal Banarasi Silk Saree",
		Description: "This exquisite Banarasi silk saree features intricate gold zari work throughout the body and pallu. The rich maroon color with gold motifs represents traditional craftsmanship at its finest. Ideal for weddings and special occasions.",
		Price:       12899,
		Images: []string{
			"https://www.karagiri.com/cdn/shop/files/zamdani-silk-5011_3.jpg?v=1695629461",
			"https://www.aishwaryadesignstudio.com/content/images/thumbs/0144754_royal-pure-banarasi-silk-saree-for-wedding-engagement-and-reception.jpeg",
			"https://www.bunkala.com/cdn/shop/files/BKBS-21219_Bright_Orange_Pure_Georgette_Handloom_Banarasi_Saree.jpg?v=1703171844",
		},
		Category: "Silk",
		Material: "Pure Silk",
		Occasion: "Wedding",
		Rating:   4.8,
		Reviews: []models.Review{
			{ID: 101, UserName: "Priya Sharma", Rating: 5, Comment: "Absolutely stunning saree! The zari work is exquisite and the color is even more beautiful in person.", Date: "2023-11-15"},
			{ID: 102, UserName: "Meera Patel", Rating: 4.5, Comment: "Gorgeous piece with amazing craftsmanship. The material is premium quality and drapes beautifully.", Date: "2023-10-28"},
			{ID: 103, UserName: "Anjali Desai", Rating: 5, Comment: "Received so many compliments when I wore this to my sister's wedding. Worth every penny!", Date: "2023-09-12"},
		},
		Colors:  []string{"Maroon", "Gold"},
		InStock: true,
	},
	{
		ID:          2,
		Name:        "Kanjeevaram Silk Temple Border Saree",
		Description: "A traditional Kanjeevaram silk saree with temple border and rich peacock motifs. This vibrant purple and gold combination is perfect for festive occasions and ceremonies. Each motif is carefully woven using fine silk threads.",
		Price:       15999,
		Images: []string{
			"https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSK1Q2Gw21EkL8wC3oCFcel_M7wzPD1UygIMTO6Qp4DVN2MTR67BMfjGCPNjsWACir43Ag&usqp=CAU",
			"https://weaverstory.com/cdn/shop/products/3_c878674a-1612-4ace-96f1-9c7460dda949.jpg?v=1723672514&width=1500",
			"https://pashudh.com/cdn/shop/files/4_8201711f-d10e-40f3-8656-e61fc2c9f55f_720x.jpg?v=1712395412",
		},
		Category: "Silk",
		Material: "Kanjeevaram Silk",
		Occasion: "Festival",
		Rating:   4.9,
		Reviews: []models.Review{
			{ID: 104, UserName: "Lakshmi Iyer", Rating: 5, Comment: "The most beautiful Kanjeevaram I've ever owned. The temple border is stunning.", Date: "2023-12-01"},
			{ID: 105, UserName: "Sarita Reddy", Rating: 5, Comment: "Exceptional quality and the purple is so regal. Perfect for traditional ceremonies.", Date: "2023-11-20"},
		},
		Colors:  []string{"Purple", "Gold"},
		InStock: true,
	},
	{
		ID:          3,
		Name:        "Contemporary Linen Blend Saree",
		Description: "A lightweight linen blend saree with contemporary digital prints. This comfortable saree is perfect for office wear or casual gatherings. Features a minimalist geometric pattern with a contrasting border.",
		Price:       3499,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB15416_426-T.BLUE_101.6496_25-12-2024-17-59:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB15416_426-T.BLUE_301.6509_25-12-2024-18-01:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB15416_426-T.BLUE_601.6520_25-12-2024-18-02:650x900",
		},
		Category: "Linen",
		Material: "Linen Blend",
		Occasion: "Casual",
		Rating:   4.3,
		Reviews: []models.Review{
			{ID: 106, UserName: "Kavita Joshi", Rating: 4, Comment: "Love the modern design and it's so comfortable for daily wear.", Date: "2023-10-15"},
			{ID: 107, UserName: "Neha Singh", Rating: 4.5, Comment: "Perfect for office wear! Lightweight and the prints are unique.", Date: "2023-09-28"},
		},
		Colors:  []string{"Teal", "Beige"},
		InStock: true,
	},
	{
		ID:          4,
		Name:        "Hand Painted Kalamkari Cotton Saree",
		Description: "A hand-painted Kalamkari cotton saree featuring traditional mythological motifs and nature-inspired designs. This earthy-toned saree is colored using natural vegetable dyes and is perfect for art enthusiasts and cultural events.",
		Price:       5899,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB17150_404-FAWN_101.21911_04-09-2024-23-11?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17150_404-FAWN_501.21935_04-09-2024-23-13?wid=1244",
			"https://manyavar.scene7.com/is/image/manyavar/SB17150_404-FAWN_401.21920_04-09-2024-23-12?wid=1244",
		},
		Category: "Cotton",
		Material: "Handloom Cotton",
		Occasion: "Cultural Events",
		Rating:   4.7,
		Reviews: []models.Review{
			{ID: 108, UserName: "Sunita Rao", Rating: 5, Comment: "A true work of art! The Kalamkari paintings are incredible and I love that it uses natural dyes.", Date: "2023-11-10"},
			{ID: 109, UserName: "Deepa Menon", Rating: 4.5, Comment: "Beautiful craftsmanship and so unique. Every time I wear it, people ask me about it.", Date: "2023-10-05"},
		},
		Colors:  []string{"Earthy Brown", "Natural Indigo"},
		InStock: true,
	},
	{
		ID:          5,
		Name:        "Organza Floral Embroidered Saree",
		Description: "A delicate organza saree with intricate floral embroidery throughout. This light pastel pink saree with silver thread work is perfect for summer weddings and engagement ceremonies. Comes with a designer blouse piece with matching embroidery.",
		Price:       8499,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB16969_421-BEIGE_444.3813_24-06-2024-00-31?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16969_421-BEIGE_301.3819_24-06-2024-00-31?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16969_421-BEIGE_501.3822_24-06-2024-00-32?wid=1244",
		},
		Category: "Organza",
		Material: "Pure Organza",
		Occasion: "Engagement",
		Rating:   4.6,
		Reviews: []models.Review{
			{ID: 110, UserName: "Ritu Kumar", Rating: 5, Comment: "So ethereal and elegant! Wore it for my engagement and felt like a princess.", Date: "2023-12-10"},
			{ID: 111, UserName: "Pooja Gandhi", Rating: 4, Comment: "Beautiful saree but requires careful handling. The embroidery is exquisite.", Date: "2023-11-28"},
		},
		Colors:  []string{"Pastel Pink", "Silver"},
		InStock: true,
	},
	{
		ID:          6,
		Name:        "Bhagalpuri Silk Digital Print Saree",
		Description: "A modern Bhagalpuri silk saree featuring contemporary digital prints of abstract art. This fusion piece bridges traditional and modern aesthetics, making it perfect for parties and evening functions.",
		Price:       4299,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB17307_422-WINE_101.7284_26-12-2024-16-09?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17307_422-WINE_301.7300_26-12-2024-16-10?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17307_422-WINE_501.7301_26-12-2024-16-10?wid=1244",
		},
		Category: "Silk",
		Material: "Bhagalpuri Silk",
		Occasion: "Party",
		Rating:   4.4,
		Reviews: []models.Review{
			{ID: 112, UserName: "Tara Mehta", Rating: 4.5, Comment: "Love the modern art prints! It's a conversation starter at parties.", Date: "2023-10-22"},
			{ID: 113, UserName: "Preeti Ghosh", Rating: 4, Comment: "Beautiful colors and printing quality. Comfortable to wear for long durations.", Date: "2023-09-18"},
		},
		Colors:  []string{"Blue", "Multicolor"},
		InStock: true,
	},
	{
		ID:          7,
		Name:        "Chanderi Silk Zari Border Saree",
		Description: "A lightweight Chanderi silk saree with golden zari border and buttis scattered across the body. This elegant cream colored saree is perfect for religious ceremonies and festive occasions.",
		Price:       6999,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB17396_416-RED_101.3513_23-06-2024-23-29:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17396_416-RED_301.3532_23-06-2024-23-30?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17396_416-RED_401.3518_23-06-2024-23-29?wid=1244",
		},
		Category: "Silk",
		Material: "Chanderi Silk",
		Occasion: "Religious Ceremony",
		Rating:   4.7,
		Reviews: []models.Review{
			{ID: 114, UserName: "Usha Narayanan", Rating: 5, Comment: "The Chanderi silk drapes beautifully and the zari work is excellent.", Date: "2023-11-15"},
			{ID: 115, UserName: "Vaishali Patel", Rating: 4.5, Comment: "Perfect festive wear. Elegant and lightweight. The cream color is so versatile.", Date: "2023-10-30"},
		},
		Colors:  []string{"Cream", "Gold"},
		InStock: true,
	},
	{
		ID:          8,
		Name:        "South Indian Pattu Saree",
		Description: "A traditional South Indian Pattu (silk) saree featuring a wide contrast border and classic temple designs. This elegant green and gold combination is ideal for weddings and traditional ceremonies.",
		Price:       13999,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB17128_416-RED.21437_18-04-2024-11-05?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17128_416-RED.21463_18-04-2024-11-08?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB17128_416-RED.21446_18-04-2024-11-06?wid=1244",
		},
		Category: "Silk",
		Material: "Pattu Silk",
		Occasion: "Wedding",
		Rating:   4.9,
		Reviews: []models.Review{
			{ID: 116, UserName: "Devi Rajagopal", Rating: 5, Comment: "Exceptional quality Pattu saree. The temple border is intricate and beautiful.", Date: "2023-12-05"},
			{ID: 117, UserName: "Lalitha Subramanian", Rating: 5, Comment: "This saree is a family heirloom material! So traditional and elegant.", Date: "2023-11-22"},
		},
		Colors:  []string{"Green", "Gold"},
		InStock: true,
	},
	{
		ID:          9,
		Name:        "Hand Block Printed Cotton Mulmul Saree",
		Description: "A lightweight cotton mulmul saree featuring traditional hand block prints in indigo and red. This breathable saree is perfect for summer wear and casual outings.",
		Price:       2899,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB16837_414-PINK_101.7257_26-12-2024-16-03:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16837_414-PINK_501.7276_26-12-2024-16-04?wid=1244",
			"https://manyavar.scene7.com/is/image/manyavar/SB16837_414-PINK_301.7272_26-12-2024-16-04?wid=1244&dpr=on,2",
		},
		Category: "Cotton",
		Material: "Mulmul Cotton",
		Occasion: "Casual",
		Rating:   4.5,
		Reviews: []models.Review{
			{ID: 118, UserName: "Anita Deshmukh", Rating: 4.5, Comment: "Perfect summer saree! The mulmul cotton is so soft and comfortable in hot weather.", Date: "2023-06-10"},
			{ID: 119, UserName: "Geeta Sharma", Rating: 4.5, Comment: "Beautiful block prints and the colors haven't faded even after multiple washes.", Date: "2023-05-15"},
		},
		Colors:  []string{"Indigo", "Red"},
		InStock: true,
	},
	{
		ID:          10,
		Name:        "Designer Sequin Work Party Wear Saree",
		Description: "A glamorous georgette saree with intricate sequin and bead work. This ready-to-wear saree comes with a pre-stitched fall and stylish designer blouse. Perfect for cocktail parties and evening events.",
		Price:       9499,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB16263-439-INDIGO+BLUE.0254_30-06-2023-16-19:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16263-439-INDIGO+BLUE.0265_30-06-2023-16-20:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16263-439-INDIGO+BLUE.0268_30-06-2023-16-20:650x900",
		},
		Category: "Designer",
		Material: "Georgette",
		Occasion: "Party",
		Rating:   4.6,
		Reviews: []models.Review{
			{ID: 120, UserName: "Nisha Kapoor", Rating: 5, Comment: "Absolutely stunning for evening events! The sequin work catches the light beautifully.", Date: "2023-11-28"},
			{ID: 121, UserName: "Shalini Roy", Rating: 4, Comment: "Gorgeous party wear saree. The pre-stitched feature makes it so convenient to wear.", Date: "2023-10-15"},
		},
		Colors:  []string{"Royal Blue", "Silver"},
		InStock: true,
	},
	{
		ID:          11,
		Name:        "Pochampally Ikat Silk Saree",
		Description: "A handwoven Pochampally Ikat silk saree featuring geometric patterns created using the traditional Ikat tie-dye technique. This double ikat weave represents the rich heritage of Telangana handloom.",
		Price:       7899,
		Images: []string{
			"https://manyavar.scene7.com/is/image/manyavar/SB16556_439-INDIGO+BLUE_101.16369_27-05-2024-13-30:650x900?&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16556_439-INDIGO+BLUE_301.16397_27-05-2024-13-33?wid=1244&dpr=on,2",
			"https://manyavar.scene7.com/is/image/manyavar/SB16556_439-INDIGO+BLUE_401.16378_27-05-2024-13-30?wid=1244",
		},
		Category: "Silk",
		Material: "Ikat Silk",
		Occasion: "Festive",
		Rating:   4.8,
		Reviews: []models.Review{
			{ID: 122, UserName: "Kalyani Reddy", Rating: 5, Comment: "The craftsmanship is extraordinary! You can feel the dedication of the artisan in every thread.", Date: "2023-09-20"},
			{ID: 123, UserName: "Madhavi Gupta", Rating: 4.5, Comment: "Beautiful geometric patterns and the colors are so vibrant. A unique addition to my collection.", Date: "2023-08-15"},
		},
		Colors:  []string{"Maroon", "Black"},
		InStock: true,
	},
	{
		ID:          12,
		Name:        "Tussar Silk Embroidered Saree",
		Description: "A rich Tussar silk saree with delicate hand embroidery work. This earthy-toned saree with vibrant embroidery is perfect for autumn weddings and cultural events.",
		Price:       6599,
		Images: []string{
			"https://meenabazaar.com/cdn/shop/files/MBTASAREMBBLACK_1800x1800.jpg?v=1744108385",
			"https://meenabazaar.com/cdn/shop/files/MBTASAREMBBLACK_5_1800x1800.jpg?v=1744108386",
			"https://meenabazaar.com/cdn/shop/files/MB2525BLACK_1_1800x1800.jpg?v=1744108386",
		},
		Category: "Silk",
		Material: "Tussar Silk",
		Occasion: "Wedding",
		Rating:   4.7,
		Reviews: []models.Review{
			{ID: 124, UserName: "Shanti Mohan", Rating: 5, Comment: "The Tussar silk has such a beautiful natural texture and the embroidery is exquisite!", Date: "2023-10-05"},
			{ID: 125, UserName: "Indira Saxena", Rating: 4.5, Comment: "Earthy and elegant. Perfect for autumn events and the quality is excellent.", Date: "2023-09-12"},
		},
		Colors:  []string{"Beige", "Rust"},
		InStock: true,
	},
}
