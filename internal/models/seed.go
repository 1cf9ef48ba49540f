package models

// SeedBooks returns the fixed startup catalog of the v1 store.
func SeedBooks() []Book {
	return []Book{
		{Title: "Title One", Author: "Author One", Category: "science"},
		{Title: "Title Two", Author: "Author Two", Category: "science"},
		{Title: "Title Three", Author: "Author Three", Category: "history"},
		{Title: "Title Four", Author: "Author Four", Category: "math"},
		{Title: "Title Five", Author: "Author Five", Category: "math"},
		{Title: "Title Six", Author: "Author Two", Category: "math"},
	}
}

// SeedBooksV2 returns the fixed startup catalog of the v2 store, ids 1..6.
func SeedBooksV2() []BookV2 {
	return []BookV2{
		{ID: 1, Title: "Computer Science Pro", Author: "codingwithmustansir", Description: "A very nice book!", Rating: 5, PublishedDate: 2020},
		{ID: 2, Title: "Be Fast with FastAPI", Author: "codingwithmustansir", Description: "A great book!", Rating: 5, PublishedDate: 2018},
		{ID: 3, Title: "Master Endpoints", Author: "codingwithmustansir", Description: "An awesome book!", Rating: 5, PublishedDate: 2018},
		{ID: 4, Title: "HP1", Author: "Author 1", Description: "Book Description", Rating: 2, PublishedDate: 2022},
		{ID: 5, Title: "HP2", Author: "Author 2", Description: "Book Description", Rating: 3, PublishedDate: 2023},
		{ID: 6, Title: "HP3", Author: "Author 3", Description: "Book Description", Rating: 3, PublishedDate: 2018},
	}
}
