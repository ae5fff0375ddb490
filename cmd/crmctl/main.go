// Command crmctl runs maintenance tasks against the CRM database.
package main

import "edu_crm/cmd/crmctl/cmd"

func main() {
	cmd.Execute()
}
