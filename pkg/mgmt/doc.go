//
// mgmt is a client of the Auth0 Management API v2.
// Each call builds a Request that is executed later, so requests can be prepared, inspected and then sent.
//

// Create client
//
//	client, err := mgmt.NewDefaultClient("tenant.auth0.com", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Setup the email provider
//
//	provider := mgmt.NewEmailProvider(mgmt.ProviderSendGrid).SetEnabled(true)
//	provider.DefaultFromAddress = "no-reply@example.com"
//	provider.Credentials = &mgmt.EmailProviderCredentials{APIKey: "SG.xxxx"}
//
//	req, err := client.EmailProvider().Setup(provider)
//	if err != nil {
//		log.Fatal(err) // provider is nil
//	}
//
//	provider, err = req.Execute(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Get only some fields
//
//	filter := mgmt.NewFieldsFilter().WithFields("name,enabled", true)
//	provider, err = client.EmailProvider().Get(filter).Execute(context.Background())
//	if err != nil {
//		var apierr *mgmt.APIError
//		if errors.As(err, &apierr) && apierr.StatusCode == http.StatusNotFound {
//			fmt.Println("No email provider configured")
//			return
//		}
//		log.Fatal(err)
//	}
//
// Delete the email provider
//
//	_, err = client.EmailProvider().Delete().Execute(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
package mgmt
