package domain

// Product is a catalog entry. Campaigns reference products by ID.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	CTALink     string `json:"ctaLink" yaml:"ctaLink"`
}
