package domain

// KeyPrefix namespaces every key this service touches in the store.
const KeyPrefix = "lumenvault:"
