package statstore

import (
	"fmt"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// PrintStoreStatus prints stat store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Documents: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Write: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Write: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}
