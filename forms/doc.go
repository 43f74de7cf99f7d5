// Package forms validates user input locally before it is sent to the API.
//
// JSON fields arrive as raw text. The Parse helpers turn that text into JSON
// values and fail with a *FieldError ("Invalid JSON in Auth Config",
// "Interaction Script must be an Array"). Struct forms are checked with
// struct tags and fail with ValidationErrors. In both cases nothing is sent.
//
//	in, err := forms.NewBridge{
//	    Name:      "Hacker News",
//	    TargetURL: "https://news.ycombinator.com",
//	}.Build()
//	if err != nil {
//	    return err
//	}
//	bridge, err := client.Bridges.Create(ctx, in)
package forms
