package model_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/model"
)

func TestConstructionError(t *testing.T) {
	_, cause := strconv.ParseFloat("12,5", 64)
	err := model.NewConstructionError("BasisAmount", "12,5", "invalid amount", cause)

	assert.Equal(t, `cannot construct BasisAmount from "12,5": invalid amount (`+cause.Error()+`)`, err.Error())
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	bare := model.NewConstructionError("CountryID", "XX", "unknown ISO 3166 country", nil)
	assert.Equal(t, `cannot construct CountryID from "XX": unknown ISO 3166 country`, bare.Error())
	assert.NoError(t, bare.Unwrap())
}

func TestLogicError(t *testing.T) {
	err := model.NewLogicError("SupplyChainTradeLineItem", "SetDocumentPositionQuantity")

	assert.ErrorIs(t, err, model.ErrNodeMissing)
	assert.Contains(t, err.Error(), "SetDocumentPositionQuantity")
	assert.Contains(t, err.Error(), "SupplyChainTradeLineItem")

	wrapped := fmt.Errorf("build: %w", err)
	var logicErr *model.LogicError
	require.ErrorAs(t, wrapped, &logicErr)
	assert.Equal(t, "SupplyChainTradeLineItem", logicErr.Node)
}

func TestCapabilityError(t *testing.T) {
	err := model.NewCapabilityError("MINIMUM", "ExchangedDocument", "IncludedNote")
	assert.Equal(t, "[MINIMUM] ExchangedDocument.IncludedNote is not supported by this profile", err.Error())
	assert.False(t, errors.Is(err, model.ErrNodeMissing))
}

func TestRequiredFieldError(t *testing.T) {
	err := model.NewRequiredFieldError("SetSeller", "Name")
	assert.Equal(t, "SetSeller: required field Name is missing", err.Error())
}

func TestErrFinalized_Wrapping(t *testing.T) {
	err := fmt.Errorf("%s: %w", "AddDocumentNote", model.ErrFinalized)
	assert.ErrorIs(t, err, model.ErrFinalized)
	assert.Equal(t, "AddDocumentNote: document is finalized", err.Error())
}
