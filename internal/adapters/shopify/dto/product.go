package dto

type ShopifyProduct struct {
	ID        string                   `json:"id,omitempty"`
	Title     string                   `json:"title,omitempty"`
	Variants  ShopifyVariantConnection `json:"variants,omitempty"`
	Metafield *ShopifyMetafield        `json:"metafield,omitempty"`
}

type ShopifyMetafield struct {
	Value *string `json:"value,omitempty"`
}

type ShopifyProductConnection struct {
	Edges    []ShopifyProductEdge `json:"edges,omitempty"`
	PageInfo ShopifyPageInfo      `json:"pageInfo,omitempty"`
}

type ShopifyProductEdge struct {
	Cursor string         `json:"cursor,omitempty"`
	Node   ShopifyProduct `json:"node"`
}

type ShopifyVariantConnection struct {
	Edges []ShopifyVariantEdge `json:"edges,omitempty"`
}

type ShopifyVariantEdge struct {
	Node ShopifyVariant `json:"node"`
}

type ShopifyVariant struct {
	ID string `json:"id,omitempty"`
}

type ProductsQueryData struct {
	Products *ShopifyProductConnection `json:"products"`
}
