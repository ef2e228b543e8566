package dataset

import "strings"

const (
	// SamplePrefix is prepended to catalog filenames when writing placeholders.
	SamplePrefix = "sample_"
	// SourceURL is where the full public dataset can be downloaded.
	SourceURL = "https://www.kaggle.com/olistbr/brazilian-ecommerce"
	// Notebook is the analysis notebook that consumes the datasets.
	Notebook = "olist_analysis_principal.ipynb"
)

// Descriptor names a required dataset file and the header row it must carry.
type Descriptor struct {
	Filename string `json:"filename"`
	Header   string `json:"header"`
}

// Columns splits the header into its column names.
func (d Descriptor) Columns() []string {
	if d.Header == "" {
		return nil
	}
	return strings.Split(d.Header, ",")
}

var required = []Descriptor{
	{
		Filename: "olist_orders_dataset.csv",
		Header:   "order_id,customer_id,order_status,order_purchase_timestamp,order_approved_at,order_delivered_carrier_date,order_delivered_customer_date,order_estimated_delivery_date",
	},
	{
		Filename: "olist_order_items_dataset.csv",
		Header:   "order_id,order_item_id,product_id,seller_id,shipping_limit_date,price,freight_value",
	},
	{
		Filename: "olist_order_payments_dataset.csv",
		Header:   "order_id,payment_sequential,payment_type,payment_installments,payment_value",
	},
	{
		Filename: "olist_order_reviews_dataset.csv",
		Header:   "review_id,order_id,review_score,review_comment_title,review_comment_message,review_creation_date,review_answer_timestamp",
	},
	{
		// Misspelled "lenght" columns match the published dataset.
		Filename: "olist_products_dataset.csv",
		Header:   "product_id,product_category_name,product_name_lenght,product_description_lenght,product_photos_qty,product_weight_g,product_length_cm,product_height_cm,product_width_cm",
	},
	{
		Filename: "product_category_name_translation.csv",
		Header:   "product_category_name,product_category_name_english",
	},
}

// Required returns the dataset files the analysis needs, in report order.
// The returned slice is a copy.
func Required() []Descriptor {
	out := make([]Descriptor, len(required))
	copy(out, required)
	return out
}

// Filenames returns the catalog filenames in report order.
func Filenames() []string {
	names := make([]string, 0, len(required))
	for _, d := range required {
		names = append(names, d.Filename)
	}
	return names
}

// Lookup finds a descriptor by filename.
func Lookup(filename string) (Descriptor, bool) {
	for _, d := range required {
		if d.Filename == filename {
			return d, true
		}
	}
	return Descriptor{}, false
}

// SampleName returns the placeholder filename for a dataset file.
func SampleName(prefix, filename string) string {
	return prefix + filename
}
