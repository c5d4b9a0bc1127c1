package validators

import "go.mongodb.org/mongo-driver/bson"

var money = bson.M{
	"bsonType": []string{"decimal", "double", "int", "long"},
	"minimum":  0,
}

var ProductValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"name",
			"price",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"price": money,

			"images": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"params": bson.M{
				"bsonType": "object",
			},
		},
	},
}

var OrderValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"address",
			"phone",
			"total_price",
			"sub_total_price",
			"total_number",
			"delivery_fee",
			"products",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"address": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 200,
			},

			"phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9]\d{7,14}$`,
			},

			"total_price":     money,
			"sub_total_price": money,
			"delivery_fee":    money,

			"total_number": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"products": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"product_id", "amount", "price", "price_single", "name"},
					"properties": bson.M{
						"product_id":   bson.M{"bsonType": "string"},
						"amount":       bson.M{"bsonType": []string{"int", "long"}, "minimum": 1},
						"price":        money,
						"price_single": money,
						"name":         bson.M{"bsonType": "string"},
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
