package metricstore

import (
	"fmt"

	"github.com/brandscope/brandscope/schema"
)

// PrintStoreStatus prints metric store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Metric Records: %d\n", status.Records)
	fmt.Printf("Selected Competitors: %d\n", status.Selections)
	if status.Records > 0 {
		fmt.Printf("Last Import: %s\n", status.LastImport.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
