package models

// DownloadStatus is a snapshot of an active content transfer. It is produced
// repeatedly while the transfer runs and is never persisted.
type DownloadStatus struct {
	BytesDownloaded int64 `json:"bytes_downloaded"`
	TotalBytes      int64 `json:"total_bytes"`
	Done            bool  `json:"done"`
}

// Percent returns the completed fraction in the range 0–100. A transfer with
// an unknown total reports 0 until done.
func (d DownloadStatus) Percent() float64 {
	if d.TotalBytes <= 0 {
		if d.Done {
			return 100
		}
		return 0
	}
	return float64(d.BytesDownloaded) / float64(d.TotalBytes) * 100
}

// SizeEstimate is the outcome of a pending-download-size query.
// UpToDate set means nothing is pending and Bytes is zero; otherwise Bytes is
// the number of bytes required to bring the loaded catalogs up to date.
// Callers must branch on UpToDate, not on Bytes == 0, to distinguish an
// up-to-date store from an estimate that was never produced.
type SizeEstimate struct {
	Bytes    int64 `json:"bytes"`
	UpToDate bool  `json:"up_to_date"`
}
