// Package contactclient submits contact inquiries to the site's
// /api/contact endpoint and tracks the form state a user interface shows:
// idle, loading, success or error.
//
// A Controller accepts one submission at a time. Successful submissions
// return to idle after a dismiss delay (5 seconds by default); Close
// cancels a pending dismiss.
//
//	c := contactclient.New("https://example.com/api/contact",
//		contactclient.WithOnChange(func(s contactclient.Snapshot) {
//			fmt.Println(s.State, s.Message)
//		}),
//	)
//	defer c.Close()
//
//	form := contactclient.Form{Name: "Jane", Email: "jane@example.com", ...}
//	snap, err := c.Submit(ctx, &form)
package contactclient
