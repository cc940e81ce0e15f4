package dto

// RejectedRow one upload row that was excluded, with its reason.
// RowNumber is 1-based and counts data rows (the header is row 0).
type RejectedRow struct {
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
}

// UploadReport per-batch outcome of a startup master upload.
// Accepted + Rejected rows = TotalRows. Overwritten counts rows that replaced
// an earlier row, either inside the batch (duplicate name, last-write-wins)
// or an existing store row in merge mode.
type UploadReport struct {
	TotalRows   int           `json:"total_rows"`
	Accepted    int           `json:"accepted"`
	Overwritten int           `json:"overwritten"`
	Rejected    []RejectedRow `json:"rejected"`
	Replaced    bool          `json:"replaced"` // true when the whole master was replaced
}
