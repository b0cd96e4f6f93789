// Package alias resolves loosely structured merchant records to
// canonical merchant IDs.
//
// Session layers hand the dashboard whatever record shape they have:
// sometimes a store ID, sometimes a subdomain, an email, or a display
// name. The resolver reads a fixed priority list of fields from the
// record, normalizes each candidate three ways (lowercase, whitespace
// stripped, reduced to [a-z0-9@.]) and returns the first exact hit
// against the alias table or the merchant registry. This is lookup, not
// similarity search: an ambiguous partial string never matches.
//
//	aliases := alias.NewMap([]alias.Pair{
//	    {Alias: "nawaemstore.ly", MerchantID: "nawaem"},
//	}, registry)
//
//	id, ok := aliases.ResolveMerchantID(alias.Record{
//	    "subdomain": "NawaemStore.ly ",
//	})
//	// id == "nawaem", ok == true
package alias
