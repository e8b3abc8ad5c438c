package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	return Input{
		SKU:          "CHN5-100",
		Name:         "Chanel No. 5 EDP 100ml",
		Brand:        "Chanel",
		Category:     "EDP",
		Size:         "100ml",
		CurrentStock: 12,
		MinStock:     50,
		ReorderPoint: 100,
		Price:        189.99,
		Supplier:     "LuxFragrance Distribution",
		Status:       StatusActive,
	}
}

func TestAddPrependsAndStamps(t *testing.T) {
	products, p, err := Add(nil, sampleInput())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)
	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.LastUpdated)
	assert.Equal(t, "CHN5-100", p.SKU)
}

func TestAddRequiresSKUAndName(t *testing.T) {
	in := sampleInput()
	in.SKU = "   "
	_, _, err := Add(nil, in)
	assert.ErrorContains(t, err, "SKU is required")

	in = sampleInput()
	in.Name = ""
	_, _, err = Add(nil, in)
	assert.ErrorContains(t, err, "name is required")
}

func TestAddRejectsDuplicateSKU(t *testing.T) {
	products, _, err := Add(nil, sampleInput())
	require.NoError(t, err)

	dup := sampleInput()
	dup.Name = "Different Name"
	_, _, err = Add(products, dup)
	assert.ErrorContains(t, err, "already exists")
}

func TestUpdateAllowsOwnSKU(t *testing.T) {
	products, p, err := Add(nil, sampleInput())
	require.NoError(t, err)

	in := sampleInput()
	in.CurrentStock = 200
	updated, err := Update(products, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 200, updated[0].CurrentStock)
}

func TestUpdateRejectsSKUTakenByOther(t *testing.T) {
	products, _, err := Add(nil, sampleInput())
	require.NoError(t, err)

	other := sampleInput()
	other.SKU = "TF-OW-50"
	other.Name = "Tom Ford Oud Wood 50ml"
	products, second, err := Add(products, other)
	require.NoError(t, err)

	steal := sampleInput()
	steal.SKU = "CHN5-100"
	_, err = Update(products, second.ID, steal)
	assert.ErrorContains(t, err, "already exists")
}

func TestUpdateUnknownID(t *testing.T) {
	products, _, err := Add(nil, sampleInput())
	require.NoError(t, err)

	_, err = Update(products, "prod-missing", sampleInput())
	assert.ErrorContains(t, err, "not found")
}

func TestRemove(t *testing.T) {
	products, p, err := Add(nil, sampleInput())
	require.NoError(t, err)

	assert.Empty(t, Remove(products, p.ID))
	assert.Len(t, Remove(products, "prod-missing"), 1)
}

func TestRequestableExcludesDiscontinued(t *testing.T) {
	products := []Product{
		{ID: "1", Status: StatusActive},
		{ID: "2", Status: StatusDiscontinued},
		{ID: "3", Status: StatusOutOfStock},
	}
	req := Requestable(products)
	require.Len(t, req, 2)
	assert.Equal(t, "1", req[0].ID)
	assert.Equal(t, "3", req[1].ID)
}

func TestSummarize(t *testing.T) {
	products := []Product{
		{Status: StatusActive, CurrentStock: 10, MinStock: 50, Price: 100},
		{Status: StatusActive, CurrentStock: 80, MinStock: 50, Price: 10},
		{Status: StatusOutOfStock, CurrentStock: 0, MinStock: 50, Price: 200},
		{Status: StatusDiscontinued, CurrentStock: 5, MinStock: 1, Price: 10},
	}
	s := Summarize(products)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 1, s.OutOfStock)
	assert.InDelta(t, 10*100+80*10+5*10, s.StockValue, 0.001)
}
