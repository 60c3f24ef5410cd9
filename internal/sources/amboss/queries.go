package amboss

// nodeQuery is the enriched node lookup. It asks for channels, socials and
// claim status on top of the graph basics.
const nodeQuery = `
query NodeInfo($pubkey: String!) {
  getNode(pubkey: $pubkey) {
    graph_info {
      node {
        alias
        color
        pub_key
        last_update
        addresses {
          addr
          network
        }
      }
      channels {
        channel_list {
          list {
            short_channel_id
            capacity
            chan_point
            last_update
            node1_pub
            node2_pub
          }
        }
        num_channels
        total_capacity
      }
    }
    socials {
      info {
        email
        twitter
        website
        lightning_address
        pubkey
      }
    }
    amboss {
      is_claimed
    }
  }
}`

// simpleNodeQuery only touches fields that have been stable for a long time.
const simpleNodeQuery = `
query NodeInfo($pubkey: String!) {
  getNode(pubkey: $pubkey) {
    graph_info {
      node {
        alias
        color
        pub_key
        addresses { addr network }
      }
      channels {
        num_channels
        total_capacity
      }
    }
  }
}`

const searchQuery = `
query Search($query: String!) {
  search(query: $query) {
    node_results {
      num_results
      results {
        alias
        pubkey
        capacity
        channel_amount
      }
    }
  }
}`

const introspectionQuery = `{
  __schema {
    queryType {
      name
      fields {
        name
        description
        args { name type { name kind ofType { name kind } } }
      }
    }
  }
}`
