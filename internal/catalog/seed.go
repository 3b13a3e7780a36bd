package catalog

const imageBase = "https://snack-code-uploads.s3.us-west-1.amazonaws.com/~asset/"

// DefaultDataset returns the storefront's built-in menu.
func DefaultDataset() *Dataset {
	ds, err := NewDataset(
		[]Category{CategoryDonut, CategoryPinkDonut, CategoryFloating},
		map[Category][]Item{
			CategoryDonut: {
				{
					ID:          "1",
					Name:        "Tasty Donut",
					Price:       "$10.00",
					Description: "Spicy tasty donut family",
					ImageURL:    imageBase + "123754dea04991debf0bf6c787556bd3",
				},
				{
					ID:          "4",
					Name:        "Tasty Donut",
					Price:       "$10.00",
					Description: "Spicy tasty donut family",
					ImageURL:    imageBase + "03537bb182da43b7bebaed63f7d062ec",
				},
			},
			CategoryPinkDonut: {
				{
					ID:          "2",
					Name:        "Pink Donut",
					Price:       "$20.00",
					Description: "Spicy tasty donut family",
					ImageURL:    imageBase + "998bf2e064e5170a94b4f84f62846433",
				},
			},
			CategoryFloating: {
				{
					ID:          "3",
					Name:        "Floating Donut",
					Price:       "$30.00",
					Description: "Spicy tasty donut family",
					ImageURL:    imageBase + "997c8ac1112915ec85b4b59a55a15a18",
				},
			},
		},
	)
	if err != nil {
		// The seed is a compile-time constant; failing here is a programming error.
		panic(err)
	}
	return ds
}
