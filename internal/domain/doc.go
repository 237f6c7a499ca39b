// Package domain models the weather widget: the search state machine's data,
// the provider port, and the presentation rules that turn a provider record
// into the sentences the widget shows.
//
// # Data Source
//
// Current conditions come from the weatherapi.com "current" endpoint:
//
//	GET https://api.weatherapi.com/v1/current.json?key=<api key>&q=<location>
//
// Only three fields of the response are used:
//
//	current.temp_c          temperature in degrees Celsius (float)
//	current.condition.text  free-text condition, e.g. "Partly Cloudy"
//	location.name           canonical place name, e.g. "Tokyo"
//
// The unit is always recorded as "C". Any other unit only changes the label.
//
// # Widget States
//
//	Idle    --submit(empty)-->     Error
//	Idle    --submit(non-empty)--> Loading
//	Success --submit(non-empty)--> Loading
//	Error   --submit(non-empty)--> Loading
//	Loading --success-->           Success
//	Loading --failure-->           Error
//
// A SearchState carries a WeatherRecord only when Success and an error
// message only when Error.
//
// # Phrasing
//
// Temperature bands (Celsius, lower bound inclusive):
//
//	<0 freezing | <10 quite cold | <20 light jacket | <30 pleasant | >=30 hot
//
// Conditions are matched case-insensitively against nine known strings
// (sunny, partly cloudy, cloudy, overcast, rain, thunderstorm, snow, mist,
// fog). Anything else is shown as the provider sent it.
//
// Night is 18:00 through 05:59 in the viewer's time zone, evaluated when the
// view is rendered rather than when the data was fetched. See [Presenter].
package domain
