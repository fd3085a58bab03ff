package dto_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
)

func TestMenuItemRequest_CoercionLaxa(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantName      string
		wantSpiciness int
		wantPrice     string
	}{
		{"tipos nativos", `{"name":"Rojos","spiciness":3,"price":89.5}`, "Rojos", 3, "89.5"},
		{"cadenas numéricas", `{"name":"Rojos","spiciness":" 4 ","price":"120.25"}`, "Rojos", 4, "120.25"},
		{"valores no numéricos", `{"name":"Rojos","spiciness":"mucho","price":"caro"}`, "Rojos", 0, "0"},
		{"nulos y ausentes", `{"name":null,"spiciness":null}`, "", 0, "0"},
		{"nombre numérico", `{"name":42,"spiciness":2.5,"price":true}`, "42", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in dto.MenuItemRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.wantName, string(in.Name))
			assert.Equal(t, tt.wantSpiciness, int(in.Spiciness))
			assert.Equal(t, tt.wantPrice, in.Price.String())
		})
	}
}

func TestPageRequest_NormalizeYOffset(t *testing.T) {
	p := dto.PageRequest{Page: 2, PageSize: 5}
	p.Normalize()
	assert.Equal(t, 5, p.Offset(), "page=2&pageSize=5 empieza en la fila 6")

	p = dto.PageRequest{Page: 0, PageSize: -1}
	p.Normalize()
	assert.Equal(t, dto.DefaultPage, p.Page)
	assert.Equal(t, dto.DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())
}

func TestPageRequest_OffsetSaturaSinDesbordar(t *testing.T) {
	p := dto.PageRequest{Page: 3, PageSize: 1 << 62}
	p.Normalize()
	assert.Equal(t, math.MaxInt, p.Offset())

	p = dto.PageRequest{Page: math.MaxInt, PageSize: math.MaxInt}
	assert.Equal(t, math.MaxInt, p.Offset())

	p = dto.PageRequest{Page: 3, PageSize: 4}
	assert.Equal(t, 8, p.Offset())
}
