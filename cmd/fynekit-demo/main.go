// Command fynekit-demo is a small tabbed application exercising every fynekit
// package: dialogs, the list adapter, the capability gate, connectivity
// probes and text-entry helpers.
package main

import (
	_ "embed" // For embedding the string bundle
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/TheEvilRoot/fynekit/debuglog"
	"github.com/TheEvilRoot/fynekit/platform"
	"github.com/TheEvilRoot/fynekit/res"
)

//go:embed assets/strings.jsonc
var stringsData []byte

func main() {
	bundle, err := res.FromResource(fyne.NewStaticResource("strings.jsonc", stringsData))
	if err != nil {
		log.Fatalf("Failed to load string bundle: %v", err)
	}
	res.SetDefault(bundle)

	debuglog.InfoLog("main: starting demo, platform version %d", platform.Version())

	a := app.New()
	window := a.NewWindow(res.StringOr("app.title", "fynekit demo"))
	window.Resize(fyne.NewSize(640, 480))

	tabs := container.NewAppTabs(
		container.NewTabItem("Dialogs", dialogsTab(a, window)),
		container.NewTabItem("List", listTab(window)),
		container.NewTabItem("Gate", gateTab(window)),
		container.NewTabItem("Network", networkTab(window)),
		container.NewTabItem("Input", inputTab(window)),
	)
	window.SetContent(tabs)

	window.ShowAndRun()
}
