package usecase

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/cespare/xxhash/v2"
)

// Catalog - неизменяемое хранилище сущностей (Entity Store), заполняется один раз при старте.
// Геттеры возвращают копии, поэтому Catalog можно безопасно разделять между горутинами.
type Catalog struct {
	users       []domain.User
	categories  []domain.Category
	products    []domain.Product
	fingerprint string
}

func NewCatalog(snapshot *domain.CatalogSnapshot) *Catalog {
	if snapshot == nil {
		snapshot = &domain.CatalogSnapshot{}
	}

	c := &Catalog{
		users:      slices.Clone(snapshot.Users),
		categories: slices.Clone(snapshot.Categories),
		products:   slices.Clone(snapshot.Products),
	}
	c.fingerprint = c.computeFingerprint()

	return c
}

func (c *Catalog) Users() []domain.User {
	return slices.Clone(c.users)
}

func (c *Catalog) Categories() []domain.Category {
	return slices.Clone(c.categories)
}

func (c *Catalog) Products() []domain.Product {
	return slices.Clone(c.products)
}

// Snapshot возвращает копию содержимого в виде снапшота (для кэша).
func (c *Catalog) Snapshot() *domain.CatalogSnapshot {
	return domain.NewCatalogSnapshot(c.Users(), c.Categories(), c.Products())
}

// Fingerprint - xxhash содержимого каталога в hex, используется как ETag.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func (c *Catalog) IsEmpty() bool {
	return len(c.users) == 0 && len(c.categories) == 0 && len(c.products) == 0
}

func (c *Catalog) computeFingerprint() string {
	d := xxhash.New()
	for _, u := range c.users {
		fmt.Fprintf(d, "u|%d|%q|%q\n", u.ID, u.Name, u.Sex)
	}
	for _, cat := range c.categories {
		fmt.Fprintf(d, "c|%d|%q|%q|%d\n", cat.ID, cat.Title, cat.Icon, cat.OwnerID)
	}
	for _, p := range c.products {
		fmt.Fprintf(d, "p|%d|%q|%d\n", p.ID, p.Name, p.CategoryID)
	}

	return strconv.FormatUint(d.Sum64(), 16)
}
