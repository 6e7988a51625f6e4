package sheets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/model"
)

func sampleTemplate() model.CapsuleTemplate {
	return model.CapsuleTemplate{
		ID:         "test-capsule",
		Name:       "Test Capsule",
		Items:      make([]model.TemplateItem, 4),
		TotalItems: 4,
	}
}

func sampleMatch() model.MatchResult {
	return model.MatchResult{
		Exact: []model.ExactMatch{
			{
				TemplateItem: model.TemplateItem{ID: "black-tee", Description: "Black t-shirt"},
				UserItem:     model.WardrobeItem{ID: "item-1", Analysis: "black crew neck tee"},
			},
		},
		Similar: []model.SimilarMatch{
			{
				TemplateItem: model.TemplateItem{ID: "white-oxford", Description: "White oxford shirt"},
				UserItem:     model.WardrobeItem{ID: "item-2", Analysis: "cream button-down"},
				Reason:       "Similar top, close match",
			},
		},
		Missing: []model.TemplateItem{
			{
				ID:          "navy-chinos",
				Description: "Navy chinos",
				Color:       "navy",
				ShoppingLinks: []model.ShoppingLink{
					{Retailer: "Everlane", URL: "https://example.com/a", Price: 68},
					{Retailer: "Uniqlo", URL: "https://example.com/b", Price: 39.90, Badge: model.BadgeBestValue},
				},
			},
			{
				ID:          "white-sneakers",
				Description: "White sneakers",
				Color:       "white",
			},
		},
	}
}

func TestPrepareCapsuleData(t *testing.T) {
	values := prepareCapsuleData(sampleTemplate(), sampleMatch())
	require.NotEmpty(t, values)

	assert.Equal(t, "Capsule Plan: Test Capsule", values[0][0])

	var rows []string
	for _, row := range values {
		if len(row) > 0 {
			rows = append(rows, fmt.Sprint(row[0]))
		}
	}
	assert.Contains(t, rows, "Summary")
	assert.Contains(t, rows, "Matched Items")
	assert.Contains(t, rows, "Shopping List")
	assert.Contains(t, rows, "Black t-shirt")
	assert.Contains(t, rows, "White oxford shirt")
	assert.Contains(t, rows, "Navy chinos")
	assert.Contains(t, rows, "White sneakers")
}

func TestPrepareCapsuleDataSummaryNumbers(t *testing.T) {
	values := prepareCapsuleData(sampleTemplate(), sampleMatch())

	var completionRow, budgetRow []any
	for _, row := range values {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case "Completion":
			completionRow = row
		case "Budget to Complete":
			budgetRow = row
		}
	}

	require.NotNil(t, completionRow)
	assert.Equal(t, "50%", completionRow[1], "2 of 4 slots matched")

	require.NotNil(t, budgetRow)
	assert.InDelta(t, 39.90, budgetRow[1], 0.0001, "Best Value price wins, linkless slot is free")
}

func TestPrepareCapsuleDataShoppingRow(t *testing.T) {
	values := prepareCapsuleData(sampleTemplate(), sampleMatch())

	var chinosRow []any
	for _, row := range values {
		if len(row) > 0 && row[0] == "Navy chinos" {
			chinosRow = row
		}
	}
	require.NotNil(t, chinosRow)
	assert.Equal(t, "Uniqlo", chinosRow[2])
	assert.InDelta(t, 39.90, chinosRow[3], 0.0001)
	assert.Equal(t, model.BadgeBestValue, chinosRow[4])
}

func TestBestLink(t *testing.T) {
	cheapest := bestLink([]model.ShoppingLink{
		{Retailer: "A", Price: 50},
		{Retailer: "B", Price: 25},
		{Retailer: "C", Price: 75},
	})
	assert.Equal(t, "B", cheapest.Retailer)

	badged := bestLink([]model.ShoppingLink{
		{Retailer: "A", Price: 50},
		{Retailer: "B", Price: 99, Badge: model.BadgeBestValue},
	})
	assert.Equal(t, "B", badged.Retailer, "badge outranks price")
}
