//go:build !dev

package client

// DefaultBaseURL is the deployed load balancer.
const DefaultBaseURL = "http://goalslb-201575773.eu-west-2.elb.amazonaws.com"
