package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/TheEvilRoot/fynekit/adapter"
	"github.com/TheEvilRoot/fynekit/connectivity"
	"github.com/TheEvilRoot/fynekit/dialogs"
	"github.com/TheEvilRoot/fynekit/gate"
	"github.com/TheEvilRoot/fynekit/internal/constants"
	"github.com/TheEvilRoot/fynekit/platform"
	"github.com/TheEvilRoot/fynekit/res"
	"github.com/TheEvilRoot/fynekit/textwatch"
	"github.com/TheEvilRoot/fynekit/viewutil"
)

// dialogsTab demonstrates the goroutine-safe dialog helpers.
func dialogsTab(a fyne.App, window fyne.Window) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewButton("Message", func() {
			dialogs.ShowMessage(window, "Hello", "A plain information dialog.")
		}),
		widget.NewButton("Error", func() {
			dialogs.ShowError(window, errors.New("something went wrong"))
		}),
		widget.NewButton("Confirm", func() {
			dialogs.ShowConfirm(window, "Confirm", "Proceed with the demo?", func(ok bool) {
				log.Printf("dialogsTab: confirm result: %v", ok)
			})
		}),
		widget.NewButton("Custom", func() {
			content := container.NewVBox(
				widget.NewLabel("Custom content with its own button row."),
			)
			buttons := container.NewHBox(widget.NewButton("Action", func() {
				log.Printf("dialogsTab: custom action pressed")
			}))
			dialogs.NewCustom("Custom Dialog", content, buttons, "Close", window).Show()
		}),
		widget.NewButton("Toast", func() {
			dialogs.ShowToast(a, window, "Done", "This toast hides itself.", 0)
		}),
	)
}

// listTab demonstrates the generic adapter over a mutable slice: the list
// always reflects the current slice because counts are never cached.
func listTab(window fyne.Window) fyne.CanvasObject {
	items := []string{"alpha", "bravo", "charlie"}

	a := adapter.NewFuncs(
		func() int { return len(items) },
		func(i int) string { return items[i] },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(h *adapter.Holder, position int, item string) {
			h.Root.(*widget.Label).SetText(fmt.Sprintf("%d: %s", position, item))
		},
	)
	list := a.NewList()

	list.OnSelected = func(id widget.ListItemID) {
		list.UnselectAll()
		dialogs.ShowMessage(window, "Picked", fmt.Sprintf("Position %d holds %q", id, items[id]))
	}

	addButton := widget.NewButton("Add", func() {
		items = append(items, fmt.Sprintf("item %d", len(items)))
		list.Refresh()
	})
	removeButton := widget.NewButton("Remove", func() {
		if len(items) > 0 {
			items = items[:len(items)-1]
			list.Refresh()
		}
	})

	return container.NewBorder(nil, container.NewHBox(addButton, removeButton), nil, nil, list)
}

// gateTab demonstrates the capability gate against the real platform host
// with a few registered probes.
func gateTab(window fyne.Window) fyne.CanvasObject {
	platform.RegisterProbe("demo.env", platform.EnvProbe("FYNEKIT_DEMO_GRANT"))
	platform.RegisterProbe("demo.elevated", platform.ElevatedProbe())

	runGuarded := func(minVersion int, permissions ...string) {
		gate.Run(platform.Host(), gate.Require(minVersion, permissions...),
			func() {
				dialogs.ShowMessage(window, "Allowed", res.StringOr("gate.allowed", "The guarded block ran."))
			},
			func(d gate.Decision) {
				switch d.Reason {
				case gate.VersionTooLow:
					dialogs.ShowErrorText(window, "Denied",
						res.FormatOr("gate.denied.version", "needs version %d, have %d", minVersion, d.Version))
				case gate.PermissionDenied:
					dialogs.ShowErrorText(window, "Denied",
						res.FormatOr("gate.denied.permission", "missing permission: %s", d.Permission))
				}
			})
	}

	return container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Platform version: %d", platform.Version())),
		widget.NewButton("Run (no requirements)", func() { runGuarded(0) }),
		widget.NewButton("Run (version floor 99999)", func() { runGuarded(99999) }),
		widget.NewButton("Run (needs demo.env)", func() { runGuarded(0, "demo.env") }),
		widget.NewButton("Run (needs demo.elevated)", func() { runGuarded(0, "demo.elevated") }),
		widget.NewLabel("Set FYNEKIT_DEMO_GRANT=1 to grant demo.env."),
	)
}

// networkTab demonstrates the connectivity probes with a waiting dialog
// around each background check.
func networkTab(window fyne.Window) fyne.CanvasObject {
	checking := func() dialog.Dialog {
		d := dialog.NewCustomWithoutButtons("Connectivity",
			widget.NewLabel(res.StringOr("network.checking", "Checking, please wait...")), window)
		d.Show()
		return d
	}

	onlineButton := widget.NewButton("Check Online", func() {
		waitDialog := checking()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), connectivity.RequestTimeout)
			defer cancel()
			online := connectivity.Online(ctx)

			fyne.Do(func() {
				waitDialog.Hide()
				if online {
					dialogs.ShowMessage(window, "Connectivity", res.StringOr("network.online", "Network is reachable."))
				} else {
					dialogs.ShowErrorText(window, "Connectivity", res.StringOr("network.offline", "No network connectivity."))
				}
			})
		}()
	})

	stunButton := widget.NewButton("Check STUN", func() {
		waitDialog := checking()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), connectivity.RequestTimeout)
			defer cancel()
			ip, err := connectivity.PublicAddress(ctx, "")

			fyne.Do(func() {
				waitDialog.Hide()
				if err != nil {
					log.Printf("networkTab: STUN check failed: %v", err)
					dialogs.ShowError(window, err)
					return
				}
				resultLabel := widget.NewLabel(res.FormatOr("network.stun.result",
					"External IP: %s (via %s)", ip, constants.DefaultSTUNServer))
				copyButton := widget.NewButton("Copy IP", func() {
					window.Clipboard().SetContent(ip)
				})
				dialogs.ShowCustom(window, "STUN Check Result", "Close",
					container.NewVBox(resultLabel, copyButton))
			})
		}()
	})

	socksButton := widget.NewButton("Check SOCKS Proxy", func() {
		dialogs.ShowInput(window, "SOCKS Proxy", "host:port", func(addr string) {
			if addr == "" {
				return
			}
			go func() {
				if err := connectivity.CheckSOCKS(addr, "example.com:80", connectivity.DialTimeout); err != nil {
					dialogs.ShowErrorText(window, "SOCKS", connectivity.ErrorMessage(err))
					return
				}
				dialogs.ShowMessage(window, "SOCKS", "Proxy forwarded the probe.")
			}()
		})
	})

	openBrowserButton := func(label, url string) fyne.CanvasObject {
		return widget.NewButton(label, func() {
			if err := platform.OpenURL(url); err != nil {
				log.Printf("networkTab: Failed to open URL %s: %v", url, err)
				dialogs.ShowError(window, err)
			}
		})
	}

	return container.NewVBox(
		onlineButton,
		stunButton,
		socksButton,
		widget.NewSeparator(),
		widget.NewLabel("IP Check Services:"),
		openBrowserButton("WhatIsMyIPAddress", "https://whatismyipaddress.com"),
		openBrowserButton("SpeedTest", "https://www.speedtest.net/"),
	)
}

// inputTab demonstrates the textwatch helpers and the viewutil animations.
func inputTab(window fyne.Window) fyne.CanvasObject {
	digitsEntry := widget.NewEntry()
	digitsEntry.SetPlaceHolder("digits only")
	textwatch.Restrict(digitsEntry, textwatch.Digits)

	echo := widget.NewLabel("(debounced echo)")
	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("type to search")
	textwatch.Debounce(searchEntry, 400*time.Millisecond, textwatch.Trimmed(func(text string) {
		fyne.Do(func() {
			echo.SetText("You stopped typing at: " + text)
		})
	}))

	indicator := canvas.NewRectangle(color.NRGBA{R: 40, G: 120, B: 40, A: 255})
	indicator.SetMinSize(fyne.NewSize(40, 20))

	flashButton := widget.NewButton("Flash", func() {
		viewutil.Flash(indicator, color.NRGBA{R: 240, G: 80, B: 80, A: 255}, 300*time.Millisecond)
	})
	toggleButton := widget.NewButton("Toggle indicator", func() {
		viewutil.Toggle(indicator)
	})

	return container.NewVBox(
		widget.NewLabel("Restricted entry:"),
		digitsEntry,
		widget.NewLabel("Debounced entry:"),
		searchEntry,
		echo,
		widget.NewSeparator(),
		container.NewHBox(flashButton, toggleButton, indicator),
	)
}
