package mongo

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

type priced struct {
	Price decimal.Decimal `bson:"price"`
}

func TestDecimalCodec_RoundTrip(t *testing.T) {
	reg := Registry()
	in := priced{Price: decimal.RequireFromString("12.50")}

	raw, err := bson.MarshalWithRegistry(reg, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out priced
	if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Price.Equal(in.Price) {
		t.Errorf("expected %s, got %s", in.Price, out.Price)
	}
}

func TestDecimalCodec_DecodesPlainNumbers(t *testing.T) {
	reg := Registry()
	tests := []struct {
		name string
		doc  bson.M
		want string
	}{
		{"double", bson.M{"price": 9.5}, "9.5"},
		{"int32", bson.M{"price": int32(20)}, "20"},
		{"int64", bson.M{"price": int64(35)}, "35"},
		{"string", bson.M{"price": "4.25"}, "4.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var out priced
			if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !out.Price.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, out.Price)
			}
		})
	}
}
