package main

import "github.com/cleitonmarx/symbiont-ai-appointments/internal/app"

func main() {
	err := app.NewAppointmentsApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
