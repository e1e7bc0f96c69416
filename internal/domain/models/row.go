package models

// Row is a raw store row. Most routes forward request bodies to the store
// untouched and return whatever the store hands back, so rows stay untyped.
type Row map[string]interface{}
