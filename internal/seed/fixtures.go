package seed

import (
	"time"

	"github.com/bookhaven/bookhaven/internal/models"
	"github.com/shopspring/decimal"
)

const (
	AdminEmail    = "admin@bookhaven.com"
	adminPassword = "Admin123!"
)

var roleNames = []string{"Admin", "Client"}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var categories = []models.Category{
	{Name: "Fiction", Description: "Fictional literature including novels and short stories", DisplayOrder: 1, IsActive: true},
	{Name: "Non-Fiction", Description: "Factual books including biographies, history, and educational content", DisplayOrder: 2, IsActive: true},
	{Name: "Science", Description: "Scientific literature including research and popular science", DisplayOrder: 3, IsActive: true},
	{Name: "History", Description: "Historical accounts, biographies, and historical analysis", DisplayOrder: 4, IsActive: true},
	{Name: "Biography", Description: "Life stories of notable individuals", DisplayOrder: 5, IsActive: true},
}

var authors = []models.Author{
	{
		FirstName: "J.K.", LastName: "Rowling",
		Biography: "British author best known for the Harry Potter fantasy series.",
		BirthDate: date(1965, 7, 31),
		Email:     "contact@jkrowling.com", Website: "https://www.jkrowling.com",
	},
	{
		FirstName: "Stephen", LastName: "King",
		Biography: "American author of horror, supernatural fiction, suspense, crime, science-fiction, and fantasy novels.",
		BirthDate: date(1947, 9, 21),
		Email:     "contact@stephenking.com", Website: "https://stephenking.com",
	},
	{
		FirstName: "Neil", LastName: "Gaiman",
		Biography: "English author of short fiction, novels, comic books, graphic novels, audio theatre, and films.",
		BirthDate: date(1960, 11, 10),
		Email:     "contact@neilgaiman.com", Website: "https://www.neilgaiman.com",
	},
	{
		FirstName: "Isaac", LastName: "Asimov",
		Biography: "American writer and professor of biochemistry, best known for his works of science fiction.",
		BirthDate: date(1920, 1, 2),
		Email:     "legacy@asimov.com", Website: "https://www.asimovonline.com",
	},
	{
		FirstName: "Agatha", LastName: "Christie",
		Biography: "English writer known for her detective novels, especially those featuring Hercule Poirot and Miss Marple.",
		BirthDate: date(1890, 9, 15),
		Email:     "estate@agathachristie.com", Website: "https://www.agathachristie.com",
	},
}

// bookFixture references its author by surname and category by name; both
// are resolved against the store when books are seeded.
type bookFixture struct {
	models.Book
	AuthorSurname string
	CategoryName  string
}

var books = []bookFixture{
	{
		Book: models.Book{
			Title:         "Harry Potter and the Philosopher's Stone",
			Description:   "The first book in the Harry Potter series, following young Harry as he discovers he's a wizard.",
			ISBN:          "978-0747532699",
			Price:         decimal.RequireFromString("12.99"),
			StockQuantity: 50,
			PublishedDate: date(1997, 6, 26),
			IsActive:      true,
			ImageURL:      "/images/books/harry-potter-1.jpg",
		},
		AuthorSurname: "Rowling", CategoryName: "Fiction",
	},
	{
		Book: models.Book{
			Title:         "The Shining",
			Description:   "A psychological horror novel about a family isolated in a haunted hotel during the winter.",
			ISBN:          "978-0307743657",
			Price:         decimal.RequireFromString("14.99"),
			StockQuantity: 30,
			PublishedDate: date(1977, 1, 28),
			IsActive:      true,
			ImageURL:      "/images/books/the-shining.jpg",
		},
		AuthorSurname: "King", CategoryName: "Fiction",
	},
	{
		Book: models.Book{
			Title:         "Good Omens",
			Description:   "A humorous fantasy novel about the coming of the Antichrist and the end of the world.",
			ISBN:          "978-0060853983",
			Price:         decimal.RequireFromString("13.99"),
			StockQuantity: 25,
			PublishedDate: date(1990, 5, 1),
			IsActive:      true,
			ImageURL:      "/images/books/good-omens.jpg",
		},
		AuthorSurname: "Gaiman", CategoryName: "Fiction",
	},
	{
		Book: models.Book{
			Title:         "Foundation",
			Description:   "The first novel in the Foundation series, set in a galactic empire on the brink of collapse.",
			ISBN:          "978-0553293357",
			Price:         decimal.RequireFromString("15.99"),
			StockQuantity: 40,
			PublishedDate: date(1951, 5, 1),
			IsActive:      true,
			ImageURL:      "/images/books/foundation.jpg",
		},
		AuthorSurname: "Asimov", CategoryName: "Science",
	},
	{
		Book: models.Book{
			Title:         "Murder on the Orient Express",
			Description:   "A classic detective novel featuring Hercule Poirot solving a murder on a luxury train.",
			ISBN:          "978-0062073501",
			Price:         decimal.RequireFromString("11.99"),
			StockQuantity: 35,
			PublishedDate: date(1934, 1, 1),
			IsActive:      true,
			ImageURL:      "/images/books/orient-express.jpg",
		},
		AuthorSurname: "Christie", CategoryName: "Fiction",
	},
}
