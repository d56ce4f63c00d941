// Package catalog supplies read-only product and service-plan data.
// Products come from a JSON file with an inline fallback list, the same
// arrangement the storefront uses for its catalog.
package catalog

import (
	"encoding/json"
	"os"

	"rinseo/models"
	"rinseo/utils"

	"go.uber.org/zap"
)

// Catalog is an immutable product/plan lookup.
type Catalog struct {
	products []models.Product
	planList []models.ServicePlan
	byID     map[string]models.Product
	plans    map[string]models.ServicePlan
}

type productFile struct {
	Products []models.Product     `json:"products"`
	Plans    []models.ServicePlan `json:"servicePlans"`
}

// Load reads the catalog file at path, falling back to the inline data
// when the file is missing or undecodable.
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		utils.GetLogger().Warn("Catalog file unavailable, using inline fallback",
			zap.String("path", path), zap.Error(err))
		return fromFile(fallbackCatalog())
	}
	var pf productFile
	if err := json.Unmarshal(data, &pf); err != nil {
		utils.GetLogger().Warn("Catalog file undecodable, using inline fallback",
			zap.String("path", path), zap.Error(err))
		return fromFile(fallbackCatalog())
	}
	if len(pf.Plans) == 0 {
		pf.Plans = fallbackCatalog().Plans
	}
	return fromFile(pf)
}

func fromFile(pf productFile) *Catalog {
	c := &Catalog{
		products: pf.Products,
		planList: pf.Plans,
		byID:     make(map[string]models.Product, len(pf.Products)),
		plans:    make(map[string]models.ServicePlan, len(pf.Plans)),
	}
	for _, p := range pf.Products {
		c.byID[p.ID] = p
	}
	for _, plan := range pf.Plans {
		c.plans[plan.Type] = plan
	}
	return c
}

// Products returns all catalog entries in file order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up one catalog entry.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Plans returns the priced service tiers in file order.
func (c *Catalog) Plans() []models.ServicePlan {
	out := make([]models.ServicePlan, len(c.planList))
	copy(out, c.planList)
	return out
}

// PlanFor maps a service type to its priced plan.
func (c *Catalog) PlanFor(serviceType string) (models.ServicePlan, bool) {
	plan, ok := c.plans[serviceType]
	return plan, ok
}
