package newick

import "strings"

// splitLeafLabel extracts a gene identifier and species label from a raw
// leaf token, per the original tool's label convention: "gene43[species=
// wombat]" yields gene_id "gene43" and species "wombat"; absent the
// bracketed attribute, the species label is the gene_id itself. raw is
// preserved verbatim by the caller for display/printing.
func splitLeafLabel(raw string) (geneID, species string) {
	cut := strings.IndexAny(raw, " [:")
	if cut < 0 {
		geneID = raw
	} else {
		geneID = raw[:cut]
	}
	species = geneID

	const attr = "[species="
	if i := strings.Index(raw, attr); i >= 0 {
		rest := raw[i+len(attr):]
		if j := strings.IndexByte(rest, ']'); j >= 0 {
			species = rest[:j]
		}
	}
	return geneID, species
}
