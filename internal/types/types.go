// Package types: internal types
package types

import (
	"sync"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/jdlms/donut-shop/internal/catalog"
	"github.com/jdlms/donut-shop/internal/detail"
	"github.com/jdlms/donut-shop/internal/listview"
)

// Page names used with tview.Pages
const (
	PageList   = "list"
	PageDetail = "detail"
)

// AppState holds the main application state
type AppState struct {
	App          *tview.Application
	Pages        *tview.Pages
	Grid         *tview.Grid
	Menu         *tview.List
	ItemTable    *tview.Table
	Header       *tview.TextView
	Footer       *tview.TextView
	DetailView   *tview.TextView
	DetailFooter *tview.TextView

	Dataset  *catalog.Dataset
	ListView *listview.Machine
	Log      *logrus.Entry
	Greeting string

	// DetailMutex guards Detail; nil while the list page is shown.
	DetailMutex sync.Mutex
	Detail      *detail.Model
}
