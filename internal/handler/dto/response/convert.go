package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		id, ok := src.(uuid.UUID)
		if !ok {
			return "", nil
		}
		return id.String(), nil
	},
}
