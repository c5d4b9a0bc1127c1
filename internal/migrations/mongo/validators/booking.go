package validators

import "go.mongodb.org/mongo-driver/bson"

const (
	datePattern     = `^\d{4}-\d{2}-\d{2}$`
	halfHourPattern = `^([01]\d|2[0-3]):(00|30)$`
)

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"hour",
			"table",
			"duration",
			"ppl",
			"phone",
			"address",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"hour": bson.M{
				"bsonType": "string",
				"pattern":  halfHourPattern,
			},

			"table": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"duration": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  24,
			},

			"ppl": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  50,
			},

			"starters": bson.M{
				"bsonType": []string{"array", "null"},
				"maxItems": 10,
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9]\d{7,14}$`,
			},

			"address": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 200,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var EventValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"hour",
			"table",
			"duration",
			"repeat",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"hour": bson.M{
				"bsonType": "string",
				"pattern":  halfHourPattern,
			},

			"table": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"duration": bson.M{
				"bsonType":         []string{"double", "int", "long"},
				"exclusiveMinimum": true,
				"minimum":          0,
				"maximum":          24,
			},

			"repeat": bson.M{
				"bsonType": "string",
				"enum":     []string{"", "daily"},
			},
		},
	},
}
