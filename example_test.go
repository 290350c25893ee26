package chatalert_test

import (
	"errors"
	"log"

	chatalert "github.com/chatalert/chatalert-go"
)

func Example() {
	err := chatalert.Init(chatalert.Options{
		Delivery: &chatalert.DeliveryOptions{
			Endpoint:    "https://hooks.example.com/services/T0000/B0000/XXXX",
			Channel:     "#incidents",
			Username:    "chatalert",
			Environment: "production",
		},
		IgnoreHandled: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Reports a panic from anywhere in the call chain below.
	defer chatalert.Recover()
}

func ExampleNotifier_OnException() {
	notifier, err := chatalert.NewNotifier(chatalert.Options{
		Delivery:            &chatalert.DeliveryOptions{Endpoint: "https://hooks.example.com/services/T0000/B0000/XXXX"},
		RaiseDeliveryErrors: true,
		BeforeReport: func(event *chatalert.ReportingEvent) {
			// Route reports for handled errors to a quieter channel.
			if event.Exception.Handled {
				options := *event.Options
				options.Channel = "#noise"
				event.Options = &options
			}
		},
		AfterReport: func(event *chatalert.ReportedEvent) {
			if !event.Delivered {
				log.Printf("report not delivered: %v", event.Err)
			}
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := notifier.OnException(errors.New("boom"), false); err != nil {
		log.Printf("reporting failed: %v", err)
	}
}
