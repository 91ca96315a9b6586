// Package httpclient is the outbound HTTP client used to reach the remote
// speech-to-text service.
//
// A Client owns one concurrency-safe *http.Client with a fixed timeout.
// Requests carry JSON, raw or multipart bodies, and every failure comes back
// as an *Error that tells transport problems (StatusCode == 0) apart from
// upstream rejections (StatusCode > 0, raw body attached).
//
//	client, err := httpclient.New(httpclient.Config{Timeout: 120 * time.Second})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   sttURL,
//	    Auth:   httpclient.BearerAuth(apiKey),
//	    Body:   &httpclient.MultipartBody{...},
//	})
package httpclient
