package v1

import (
	ez_uuid "github.com/ledgerbook/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIAccountID struct {
	AccountID ez_uuid.UUID `uri:"accountId" binding:"required" format:"UUID"` // ID of the account
}

type URIBudgetCategory struct {
	URIID
	CategoryID ez_uuid.UUID `uri:"categoryId" binding:"required" format:"UUID"` // ID of the category
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
